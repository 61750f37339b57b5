package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gou177/vezdecod-API-50/internal/dependencies/clock"
	"github.com/gou177/vezdecod-API-50/internal/dependencies/random"
	"github.com/gou177/vezdecod-API-50/internal/model"
	"github.com/gou177/vezdecod-API-50/internal/session"
	"github.com/gou177/vezdecod-API-50/internal/storage"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Config holds configuration for the game controller
type Config struct {
	// SessionTTL is how long a session may run before it is ended
	// autonomously
	SessionTTL time.Duration
}

// DefaultConfig returns default game configuration
func DefaultConfig() Config {
	return Config{
		SessionTTL: 65 * time.Second,
	}
}

// Controller owns session lifecycle: creation, lookup, the reveal
// operation, and both end paths (win and expiry). Finished games are
// recorded to results storage.
type Controller struct {
	sessions *session.Store
	results  storage.Storage
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
	cfg      Config
}

// NewController creates a new game controller
func NewController(
	sessions *session.Store,
	results storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	if cfg.SessionTTL == 0 {
		cfg = DefaultConfig()
	}
	return &Controller{
		sessions: sessions,
		results:  results,
		clock:    clock,
		random:   random,
		logger:   logger,
		cfg:      cfg,
	}
}

// CreateSession builds a fresh shuffled board, registers the session and
// arms its expiry timer.
func (c *Controller) CreateSession(ctx context.Context) (session.Snapshot, error) {
	token := c.random.String(22, tokenAlphabet)
	sess := session.New(token, c.buildBoard(), c.clock.Now())

	c.sessions.Put(sess)
	sess.ArmExpiry(c.cfg.SessionTTL, func() {
		c.endSession(context.Background(), sess, false)
	})

	c.logger.Info("game created",
		slog.String("token", token),
		slog.Duration("ttl", c.cfg.SessionTTL),
	)

	return sess.Snapshot(), nil
}

// buildBoard duplicates the pair ids and shuffles them onto a 4x4 grid
func (c *Controller) buildBoard() *model.Board {
	ids := make([]int, 0, model.TileCount)
	for v := 0; v < model.PairValues; v++ {
		ids = append(ids, v, v)
	}
	c.random.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return model.NewBoard(ids)
}

// GetSession retrieves a live session's state by token
func (c *Controller) GetSession(ctx context.Context, token string) (session.Snapshot, error) {
	sess, err := c.sessions.Get(token)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Reveal flips the tile at pos on the addressed session and resolves the
// turn. A reveal that completes the board ends the session.
func (c *Controller) Reveal(ctx context.Context, token string, pos model.Position) (session.Snapshot, error) {
	sess, err := c.sessions.Get(token)
	if err != nil {
		return session.Snapshot{}, err
	}

	won, err := sess.Reveal(pos)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrGameEnded):
			// Expiry won the race; the session is gone as far as
			// callers are concerned
			return session.Snapshot{}, model.ErrGameNotFound
		case errors.Is(err, model.ErrTooManySelected):
			c.logger.Error("reveal invariant violated",
				slog.String("token", token),
				slog.Int("row", pos.Row),
				slog.Int("col", pos.Col),
			)
			return session.Snapshot{}, err
		default:
			return session.Snapshot{}, err
		}
	}

	if won {
		c.endSession(ctx, sess, true)
	}

	return sess.Snapshot(), nil
}

// Leaderboard returns up to limit finished games ordered by score
func (c *Controller) Leaderboard(ctx context.Context, limit int) ([]*model.GameResult, error) {
	return c.results.TopResults(ctx, limit)
}

// endSession performs the single end transition for a session. Both the
// win path and the expiry timer funnel through here; Session.End
// guarantees only one caller proceeds.
func (c *Controller) endSession(ctx context.Context, sess *session.Session, won bool) {
	if !sess.End() {
		return
	}
	c.sessions.Remove(sess.Token)

	snap := sess.Snapshot()
	result := &model.GameResult{
		Token:     snap.Token,
		Score:     snap.Score,
		Won:       won,
		TilesOpen: snap.Board.OpenCount(),
		CreatedAt: snap.CreatedAt,
		EndedAt:   c.clock.Now(),
	}
	if err := c.results.SaveResult(ctx, result); err != nil {
		c.logger.Error("failed to save game result",
			slog.String("token", snap.Token),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("game ended",
		slog.String("token", snap.Token),
		slog.Int("score", snap.Score),
		slog.Bool("won", won),
	)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateSession(ctx context.Context) (session.Snapshot, error)
	GetSession(ctx context.Context, token string) (session.Snapshot, error)
	Reveal(ctx context.Context, token string, pos model.Position) (session.Snapshot, error)
	Leaderboard(ctx context.Context, limit int) ([]*model.GameResult, error)
}

var _ ControllerInterface = (*Controller)(nil)
