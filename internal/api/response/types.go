package response

import (
	"time"

	"github.com/gou177/vezdecod-API-50/internal/model"
	"github.com/gou177/vezdecod-API-50/internal/session"
)

// Tile represents one board cell in API responses. PairID is only
// populated for tiles whose face is visible (TEMP_OPEN or OPEN); closed
// and closing tiles expose their status alone.
type Tile struct {
	Status string `json:"status"`
	PairID *int   `json:"pair_id,omitempty"`
}

// TileFromModel converts a model.Tile, applying the visibility rule
func TileFromModel(t model.Tile) Tile {
	resp := Tile{Status: string(t.Status)}
	if t.Visible() {
		id := t.PairID
		resp.PairID = &id
	}
	return resp
}

// Game represents a game session in API responses
type Game struct {
	Token     string    `json:"token"`
	Tiles     [][]Tile  `json:"tiles"`
	Score     int       `json:"score"`
	Ended     bool      `json:"ended"`
	CreatedAt time.Time `json:"created_at"`
}

// GameFromSnapshot converts a session snapshot to a response Game
func GameFromSnapshot(snap session.Snapshot) Game {
	tiles := make([][]Tile, model.BoardSize)
	for row := 0; row < model.BoardSize; row++ {
		tiles[row] = make([]Tile, model.BoardSize)
		for col := 0; col < model.BoardSize; col++ {
			tiles[row][col] = TileFromModel(snap.Board.Tiles[row][col])
		}
	}
	return Game{
		Token:     snap.Token,
		Tiles:     tiles,
		Score:     snap.Score,
		Ended:     snap.Ended,
		CreatedAt: snap.CreatedAt,
	}
}

// LeaderboardEntry represents one finished game on the leaderboard
type LeaderboardEntry struct {
	Token   string    `json:"token"`
	Score   int       `json:"score"`
	Won     bool      `json:"won"`
	EndedAt time.Time `json:"ended_at"`
}

// LeaderboardEntryFromModel converts a model.GameResult
func LeaderboardEntryFromModel(r *model.GameResult) LeaderboardEntry {
	return LeaderboardEntry{
		Token:   r.Token,
		Score:   r.Score,
		Won:     r.Won,
		EndedAt: r.EndedAt,
	}
}

// LeaderboardResponse is the response for the leaderboard endpoint
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromModel converts a slice of results
func LeaderboardFromModel(results []*model.GameResult) LeaderboardResponse {
	entries := make([]LeaderboardEntry, len(results))
	for i, r := range results {
		entries[i] = LeaderboardEntryFromModel(r)
	}
	return LeaderboardResponse{Entries: entries}
}
