package model

import "time"

// GameResult is the record kept for a finished game, whether it was won
// or timed out. Live sessions are never persisted; only their outcome is.
type GameResult struct {
	Token     string
	Score     int
	Won       bool
	TilesOpen int
	CreatedAt time.Time
	EndedAt   time.Time
}
