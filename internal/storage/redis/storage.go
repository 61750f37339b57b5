package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gou177/vezdecod-API-50/internal/model"
	"github.com/gou177/vezdecod-API-50/internal/storage"
)

// Storage is a Redis-backed implementation of the results storage
// interface. Scores live in a sorted set so the leaderboard is a single
// range query.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveResult(ctx context.Context, result *model.GameResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	// Pipeline the record write and the leaderboard update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, resultKey(result.Token), data, s.cfg.ResultTTL)
	pipe.ZAdd(ctx, leaderboardKey(), redis.Z{
		Score:  float64(result.Score),
		Member: result.Token,
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetResult(ctx context.Context, token string) (*model.GameResult, error) {
	data, err := s.client.Get(ctx, resultKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	var result model.GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) TopResults(ctx context.Context, limit int) ([]*model.GameResult, error) {
	stop := int64(-1) // full range
	if limit > 0 {
		stop = int64(limit) - 1
	}

	tokens, err := s.client.ZRevRange(ctx, leaderboardKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*model.GameResult, 0, len(tokens))
	for _, token := range tokens {
		result, err := s.GetResult(ctx, token)
		if err != nil {
			if errors.Is(err, model.ErrResultNotFound) {
				// Record expired out from under the leaderboard; drop the entry
				_ = s.client.ZRem(ctx, leaderboardKey(), token).Err()
				continue
			}
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
