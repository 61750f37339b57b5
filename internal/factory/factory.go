package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gou177/vezdecod-API-50/internal/dependencies/clock"
	"github.com/gou177/vezdecod-API-50/internal/dependencies/random"
	"github.com/gou177/vezdecod-API-50/internal/services/game"
	"github.com/gou177/vezdecod-API-50/internal/session"
	"github.com/gou177/vezdecod-API-50/internal/storage"
	"github.com/gou177/vezdecod-API-50/internal/storage/memory"
	redisstorage "github.com/gou177/vezdecod-API-50/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Live sessions
	Sessions *session.Store

	// Finished-game results
	Results storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// GameConfig holds gameplay settings (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the results backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create results storage based on type
	var results storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		results = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisResults, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		results = redisResults
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	gameCfg := cfg.GameConfig
	if gameCfg.SessionTTL == 0 {
		gameCfg = game.DefaultConfig()
	}

	return newWithDependencies(results, clock.New(), random.New(), gameCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	results storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	gameCfg game.Config,
	logger *slog.Logger,
) *App {
	sessions := session.NewStore()
	gameController := game.NewController(sessions, results, clk, rnd, logger, gameCfg)

	return &App{
		Sessions:       sessions,
		Results:        results,
		Clock:          clk,
		Random:         rnd,
		GameController: gameController,
	}
}
