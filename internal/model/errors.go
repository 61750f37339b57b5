package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameEnded       = errors.New("game has ended")
	ErrTileAlreadyOpen = errors.New("tile is already open")
	ErrInvalidPosition = errors.New("invalid board position")

	// ErrTooManySelected indicates more than two TEMP_OPEN tiles were
	// observed during a reveal scan. Per-session locking makes this
	// unreachable; seeing it means the serialization guarantee broke.
	ErrTooManySelected = errors.New("more than two tiles selected in one turn")

	// Result errors
	ErrResultNotFound = errors.New("game result not found")
)
