package storage

import (
	"context"

	"github.com/gou177/vezdecod-API-50/internal/model"
)

// Storage defines the interface for persisting finished-game results.
// Live sessions stay in memory; only outcomes go through here.
type Storage interface {
	// SaveResult records the outcome of a finished game
	SaveResult(ctx context.Context, result *model.GameResult) error

	// GetResult retrieves a result by game token
	GetResult(ctx context.Context, token string) (*model.GameResult, error)

	// TopResults returns up to limit results ordered by score descending
	TopResults(ctx context.Context, limit int) ([]*model.GameResult, error)
}
