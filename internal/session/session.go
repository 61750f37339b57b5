package session

import (
	"sync"
	"time"

	"github.com/gou177/vezdecod-API-50/internal/model"
)

// Score deltas applied when the second tile of a turn is revealed
const (
	matchScore    = 30
	mismatchScore = -10
)

// Session is a single live game. All board and score mutation happens
// under the session's own mutex, so two reveals on the same session are
// linearized and never observe each other's partial scans. The expiry
// callback takes the same mutex via End.
type Session struct {
	Token     string
	CreatedAt time.Time

	mu     sync.Mutex
	board  *model.Board
	score  int
	ended  bool
	expiry *time.Timer
	done   chan struct{}
}

// New creates a session over an already-built board. The expiry timer is
// armed separately via ArmExpiry.
func New(token string, board *model.Board, createdAt time.Time) *Session {
	return &Session{
		Token:     token,
		CreatedAt: createdAt,
		board:     board,
		done:      make(chan struct{}),
	}
}

// Snapshot is an immutable copy of session state, safe to read after the
// session mutex has been released.
type Snapshot struct {
	Token     string
	Board     *model.Board
	Score     int
	Ended     bool
	CreatedAt time.Time
}

// Snapshot returns a consistent copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Token:     s.Token,
		Board:     s.board.Clone(),
		Score:     s.score,
		Ended:     s.ended,
		CreatedAt: s.CreatedAt,
	}
}

// Reveal flips the tile at pos face-up and resolves the turn. It returns
// won=true when the reveal completed the board; the caller is responsible
// for ending the session.
//
// Mechanics, in one pass over the board: the turn's TEMP_OPEN tiles are
// collected in row-major order, and any CLOSING tiles left over from a
// previous mismatch flip back to CLOSED. A lone TEMP_OPEN tile is the
// first pick of a turn and stays as-is. Two TEMP_OPEN tiles resolve:
// equal pair ids open both permanently (+30), differing ids mark both
// CLOSING (-10) to be hidden on the next reveal anywhere on the board.
func (s *Session) Reveal(pos model.Position) (won bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return false, model.ErrGameEnded
	}

	tile, err := s.board.At(pos)
	if err != nil {
		return false, err
	}
	if tile.Status == model.TileOpen || tile.Status == model.TileTempOpen {
		return false, model.ErrTileAlreadyOpen
	}
	tile.Status = model.TileTempOpen

	var selected []*model.Tile
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			t := &s.board.Tiles[row][col]
			switch t.Status {
			case model.TileTempOpen:
				selected = append(selected, t)
			case model.TileClosing:
				t.Status = model.TileClosed
			}
		}
	}

	if len(selected) > 2 {
		// Unreachable while the per-session mutex holds; surface it
		// rather than guessing at a resolution.
		return false, model.ErrTooManySelected
	}
	if len(selected) < 2 {
		return false, nil
	}

	first, second := selected[0], selected[1]
	if first.PairID == second.PairID {
		first.Status = model.TileOpen
		second.Status = model.TileOpen
		s.score += matchScore
	} else {
		first.Status = model.TileClosing
		second.Status = model.TileClosing
		s.score += mismatchScore
	}

	return s.board.OpenCount() == model.TileCount, nil
}

// ArmExpiry schedules fn to run after d. The timer is cancelled when the
// session ends first. No-op if the session has already ended.
func (s *Session) ArmExpiry(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.expiry = time.AfterFunc(d, fn)
}

// End marks the session ended, cancels the pending expiry timer and
// signals waiters. It returns true only for the call that performed the
// transition: the win path and the expiry callback may both call End, and
// exactly one of them gets true.
func (s *Session) End() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return false
	}
	s.ended = true
	if s.expiry != nil {
		s.expiry.Stop()
	}
	close(s.done)
	return true
}

// Ended reports whether the session has ended
func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

// Done returns a channel that is closed when the session ends
func (s *Session) Done() <-chan struct{} {
	return s.done
}
