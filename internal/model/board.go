package model

// Board dimensions are fixed: 16 tiles carrying 8 distinct pair ids,
// each appearing exactly twice
const (
	BoardSize  = 4
	TileCount  = BoardSize * BoardSize
	PairValues = TileCount / 2
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Board is the 4x4 arrangement of tiles for a single game. The arrangement
// is fixed at creation and never reshuffled.
type Board struct {
	Tiles [][]Tile // Row-major: Tiles[row][col]
}

// NewBoard lays the given pair ids row-major into a 4x4 grid, each tile
// starting CLOSED. The caller provides the ids already shuffled; len(pairIDs)
// must be TileCount.
func NewBoard(pairIDs []int) *Board {
	tiles := make([][]Tile, BoardSize)
	for row := range tiles {
		tiles[row] = make([]Tile, BoardSize)
		for col := range tiles[row] {
			tiles[row][col] = Tile{
				PairID: pairIDs[row*BoardSize+col],
				Status: TileClosed,
			}
		}
	}
	return &Board{Tiles: tiles}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

// At returns a reference to the tile at the given position, or
// ErrInvalidPosition if the position is outside the board
func (b *Board) At(pos Position) (*Tile, error) {
	if !b.IsValidPosition(pos) {
		return nil, ErrInvalidPosition
	}
	return &b.Tiles[pos.Row][pos.Col], nil
}

// OpenCount returns the number of permanently revealed tiles
func (b *Board) OpenCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Tiles[row][col].Status == TileOpen {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	tiles := make([][]Tile, BoardSize)
	for row := range tiles {
		tiles[row] = make([]Tile, BoardSize)
		copy(tiles[row], b.Tiles[row])
	}
	return &Board{Tiles: tiles}
}
