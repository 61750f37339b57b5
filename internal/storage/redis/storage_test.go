package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/gou177/vezdecod-API-50/internal/model"
)

type StorageSuite struct {
	suite.Suite
	ctx     context.Context
	mini    *miniredis.Miniredis
	storage *Storage
}

func (s *StorageSuite) SetupTest() {
	s.ctx = context.Background()

	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	cfg := DefaultConfig()
	cfg.ResultTTL = time.Hour
	s.storage = NewWithClient(client, cfg)
}

func (s *StorageSuite) TearDownTest() {
	s.Require().NoError(s.storage.Close())
	s.mini.Close()
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) sampleResult(token string, score int) *model.GameResult {
	return &model.GameResult{
		Token:     token,
		Score:     score,
		Won:       score > 0,
		TilesOpen: 16,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		EndedAt:   time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetResult() {
	saved := s.sampleResult("game-1", 240)
	s.Require().NoError(s.storage.SaveResult(s.ctx, saved))

	got, err := s.storage.GetResult(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(saved.Token, got.Token)
	s.Equal(saved.Score, got.Score)
	s.Equal(saved.Won, got.Won)
	s.True(saved.EndedAt.Equal(got.EndedAt))
}

func (s *StorageSuite) TestGetResultMissing() {
	_, err := s.storage.GetResult(s.ctx, "missing")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestSaveResultSetsTTL() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.sampleResult("game-1", 30)))

	ttl := s.mini.TTL(resultKey("game-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestTopResultsOrdering() {
	for token, score := range map[string]int{
		"low":  -40,
		"high": 240,
		"mid":  90,
	} {
		s.Require().NoError(s.storage.SaveResult(s.ctx, s.sampleResult(token, score)))
	}

	results, err := s.storage.TopResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Equal("high", results[0].Token)
	s.Equal("mid", results[1].Token)
	s.Equal("low", results[2].Token)
}

func (s *StorageSuite) TestTopResultsLimit() {
	for token, score := range map[string]int{
		"a": 10,
		"b": 20,
		"c": 30,
	} {
		s.Require().NoError(s.storage.SaveResult(s.ctx, s.sampleResult(token, score)))
	}

	results, err := s.storage.TopResults(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal("c", results[0].Token)
	s.Equal("b", results[1].Token)
}

func (s *StorageSuite) TestTopResultsDropsExpiredRecords() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.sampleResult("fresh", 30)))
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.sampleResult("stale", 240)))

	// Expire the record but leave its leaderboard entry behind
	s.mini.FastForward(2 * time.Hour)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.sampleResult("fresh", 30)))

	results, err := s.storage.TopResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("fresh", results[0].Token)

	// And the stale token was pruned from the sorted set
	results, err = s.storage.TopResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(results, 1)
}

func (s *StorageSuite) TestSaveResultUpdatesScore() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.sampleResult("game-1", 10)))
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.sampleResult("game-1", 90)))

	results, err := s.storage.TopResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(90, results[0].Score)
}
