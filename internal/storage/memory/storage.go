package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gou177/vezdecod-API-50/internal/model"
	"github.com/gou177/vezdecod-API-50/internal/storage"
)

// Storage is an in-memory implementation of the results storage interface
type Storage struct {
	mu      sync.RWMutex
	results map[string]*model.GameResult
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		results: make(map[string]*model.GameResult),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveResult(ctx context.Context, result *model.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *result
	s.results[result.Token] = &copied
	return nil
}

func (s *Storage) GetResult(ctx context.Context, token string) (*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[token]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	copied := *result
	return &copied, nil
}

func (s *Storage) TopResults(ctx context.Context, limit int) ([]*model.GameResult, error) {
	s.mu.RLock()
	results := make([]*model.GameResult, 0, len(s.results))
	for _, r := range s.results {
		copied := *r
		results = append(results, &copied)
	}
	s.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].EndedAt.Before(results[j].EndedAt)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
