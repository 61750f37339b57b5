package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gou177/vezdecod-API-50/internal/dependencies/mocks"
	"github.com/gou177/vezdecod-API-50/internal/model"
	"github.com/gou177/vezdecod-API-50/internal/services/game"
	"github.com/gou177/vezdecod-API-50/internal/session"
	"github.com/gou177/vezdecod-API-50/internal/storage/memory"
	"github.com/gou177/vezdecod-API-50/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	ctx        context.Context
	sessions   *session.Store
	results    *memory.Storage
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom
	controller *game.Controller
}

func (s *ControllerSuite) SetupTest() {
	s.ctx = context.Background()
	s.sessions = session.NewStore()
	s.results = memory.New()
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandom()
	s.controller = game.NewController(
		s.sessions,
		s.results,
		s.mockClock,
		s.mockRandom,
		testutil.NopLogger(),
		game.Config{SessionTTL: time.Hour},
	)
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

// createGame makes a session with a known token. The mock random leaves
// the board unshuffled: (0,0)/(0,1) match, (0,2)/(0,3) match, and so on.
func (s *ControllerSuite) createGame(token string) session.Snapshot {
	s.mockRandom.QueueString(token)
	snap, err := s.controller.CreateSession(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(token, snap.Token)
	return snap
}

func (s *ControllerSuite) TestCreateSession() {
	snap := s.createGame("game-1")

	s.Equal(0, snap.Score)
	s.False(snap.Ended)
	s.Equal(s.mockClock.Now(), snap.CreatedAt)

	s.Require().Len(snap.Board.Tiles, model.BoardSize)
	counts := make(map[int]int)
	for _, row := range snap.Board.Tiles {
		s.Require().Len(row, model.BoardSize)
		for _, tile := range row {
			s.Equal(model.TileClosed, tile.Status)
			counts[tile.PairID]++
		}
	}
	s.Len(counts, model.PairValues)
	for _, count := range counts {
		s.Equal(2, count)
	}
}

func (s *ControllerSuite) TestCreateSessionUsesShuffle() {
	s.mockRandom.ShuffleFunc = func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	}
	snap := s.createGame("game-1")

	// Reversed layout starts with the highest pair id
	s.Equal(model.PairValues-1, snap.Board.Tiles[0][0].PairID)
	s.Equal(0, snap.Board.Tiles[model.BoardSize-1][model.BoardSize-1].PairID)
}

func (s *ControllerSuite) TestGetSession() {
	s.createGame("game-1")

	snap, err := s.controller.GetSession(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal("game-1", snap.Token)
}

func (s *ControllerSuite) TestGetSessionNotFound() {
	_, err := s.controller.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestRevealMatch() {
	s.createGame("game-1")

	snap, err := s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 0, Col: 0})
	s.Require().NoError(err)
	s.Equal(model.TileTempOpen, snap.Board.Tiles[0][0].Status)
	s.Equal(0, snap.Score)

	snap, err = s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 0, Col: 1})
	s.Require().NoError(err)
	s.Equal(model.TileOpen, snap.Board.Tiles[0][0].Status)
	s.Equal(model.TileOpen, snap.Board.Tiles[0][1].Status)
	s.Equal(30, snap.Score)
}

func (s *ControllerSuite) TestRevealMismatch() {
	s.createGame("game-1")

	_, err := s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 0, Col: 0})
	s.Require().NoError(err)
	snap, err := s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 0, Col: 2})
	s.Require().NoError(err)

	s.Equal(model.TileClosing, snap.Board.Tiles[0][0].Status)
	s.Equal(model.TileClosing, snap.Board.Tiles[0][2].Status)
	s.Equal(-10, snap.Score)

	// The next reveal anywhere flips the mismatch back down
	snap, err = s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 3, Col: 0})
	s.Require().NoError(err)
	s.Equal(model.TileClosed, snap.Board.Tiles[0][0].Status)
	s.Equal(model.TileClosed, snap.Board.Tiles[0][2].Status)
}

func (s *ControllerSuite) TestRevealErrors() {
	s.createGame("game-1")

	_, err := s.controller.Reveal(s.ctx, "missing", model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrGameNotFound)

	_, err = s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 4, Col: 0})
	s.ErrorIs(err, model.ErrInvalidPosition)

	_, err = s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 0, Col: 0})
	s.Require().NoError(err)
	_, err = s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrTileAlreadyOpen)
}

func (s *ControllerSuite) TestWinEndsSession() {
	s.createGame("game-1")

	created := s.mockClock.Now()
	s.mockClock.Advance(42 * time.Second)

	var last session.Snapshot
	for i := 0; i < model.TileCount; i++ {
		pos := model.Position{Row: i / model.BoardSize, Col: i % model.BoardSize}
		snap, err := s.controller.Reveal(s.ctx, "game-1", pos)
		s.Require().NoError(err)
		last = snap
	}

	s.True(last.Ended)
	s.Equal(model.PairValues*30, last.Score)

	// The finished session is gone from the live store
	_, err := s.controller.GetSession(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	// And its result is recorded
	result, err := s.results.GetResult(s.ctx, "game-1")
	s.Require().NoError(err)
	s.True(result.Won)
	s.Equal(model.PairValues*30, result.Score)
	s.Equal(model.TileCount, result.TilesOpen)
	s.Equal(created, result.CreatedAt)
	s.Equal(s.mockClock.Now(), result.EndedAt)
}

func (s *ControllerSuite) TestExpiryEndsSession() {
	s.controller = game.NewController(
		s.sessions,
		s.results,
		s.mockClock,
		s.mockRandom,
		testutil.NopLogger(),
		game.Config{SessionTTL: 20 * time.Millisecond},
	)
	s.createGame("game-1")

	_, err := s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 0, Col: 0})
	s.Require().NoError(err)

	s.Require().Eventually(func() bool {
		_, err := s.controller.GetSession(s.ctx, "game-1")
		return err != nil
	}, time.Second, 5*time.Millisecond, "session should expire")

	_, err = s.controller.Reveal(s.ctx, "game-1", model.Position{Row: 0, Col: 1})
	s.ErrorIs(err, model.ErrGameNotFound)

	result, err := s.results.GetResult(s.ctx, "game-1")
	s.Require().NoError(err)
	s.False(result.Won)
	s.Equal(0, result.Score)
}

func (s *ControllerSuite) TestWinCancelsExpiry() {
	s.controller = game.NewController(
		s.sessions,
		s.results,
		s.mockClock,
		s.mockRandom,
		testutil.NopLogger(),
		game.Config{SessionTTL: 100 * time.Millisecond},
	)
	s.createGame("game-1")

	for i := 0; i < model.TileCount; i++ {
		pos := model.Position{Row: i / model.BoardSize, Col: i % model.BoardSize}
		_, err := s.controller.Reveal(s.ctx, "game-1", pos)
		s.Require().NoError(err)
	}

	// Give a stale timer every chance to misfire
	time.Sleep(200 * time.Millisecond)

	result, err := s.results.GetResult(s.ctx, "game-1")
	s.Require().NoError(err)
	s.True(result.Won)
}

func (s *ControllerSuite) TestLeaderboard() {
	base := s.mockClock.Now()
	for _, r := range []*model.GameResult{
		{Token: "low", Score: 10, EndedAt: base},
		{Token: "high", Score: 240, Won: true, EndedAt: base.Add(time.Minute)},
		{Token: "mid", Score: 90, EndedAt: base.Add(2 * time.Minute)},
	} {
		s.Require().NoError(s.results.SaveResult(s.ctx, r))
	}

	top, err := s.controller.Leaderboard(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("high", top[0].Token)
	s.Equal("mid", top[1].Token)
}
