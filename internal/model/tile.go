package model

// TileStatus represents the visibility state of a single tile
type TileStatus string

const (
	TileClosed   TileStatus = "CLOSED"    // Face-down, not selected
	TileTempOpen TileStatus = "TEMP_OPEN" // Selected this turn, not yet resolved
	TileOpen     TileStatus = "OPEN"      // Permanently revealed (matched)
	TileClosing  TileStatus = "CLOSING"   // Mismatched last turn, hidden on the next reveal
)

// Tile is one cell of the board, carrying a pair id and a visibility status.
// Exactly two tiles on a board share each pair id.
type Tile struct {
	PairID int
	Status TileStatus
}

// Visible returns true if the tile's face (pair id) is currently shown
// to the player. CLOSED and CLOSING tiles expose their status only.
func (t Tile) Visible() bool {
	return t.Status == TileTempOpen || t.Status == TileOpen
}
