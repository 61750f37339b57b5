package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Tile response type (matches API)
type Tile struct {
	Status string `json:"status"`
	PairID *int   `json:"pair_id,omitempty"`
}

// Game response type
type Game struct {
	Token     string    `json:"token"`
	Tiles     [][]Tile  `json:"tiles"`
	Score     int       `json:"score"`
	Ended     bool      `json:"ended"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Token   string    `json:"token"`
	Score   int       `json:"score"`
	Won     bool      `json:"won"`
	EndedAt time.Time `json:"ended_at"`
}

// Leaderboard response type
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.Token)
	fmt.Printf("Score: %d\n", g.Score)
	if g.Ended {
		fmt.Println("Ended: yes")
	}
	fmt.Println()
	o.printGrid(g.Tiles)
}

// printGrid renders the board. Face-up tiles show their pair id, tiles
// about to close show parentheses, face-down tiles show a dot.
func (o *Output) printGrid(tiles [][]Tile) {
	if len(tiles) == 0 {
		return
	}
	size := len(tiles)

	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf(" %d  ", col)
	}
	fmt.Println()

	for row := 0; row < size; row++ {
		fmt.Printf(" %d |", row)
		for col := 0; col < size; col++ {
			fmt.Printf("%s|", renderTile(tiles[row][col]))
		}
		fmt.Println()
	}
}

func renderTile(t Tile) string {
	switch t.Status {
	case "OPEN":
		if t.PairID == nil {
			return " ? "
		}
		return fmt.Sprintf(" %d ", *t.PairID)
	case "TEMP_OPEN":
		if t.PairID == nil {
			return "*?*"
		}
		return fmt.Sprintf("*%d*", *t.PairID)
	case "CLOSING":
		return "( )"
	default:
		return " . "
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Entries) == 0 {
		fmt.Println("No finished games yet")
		return
	}

	fmt.Printf("Top games (%d):\n", len(l.Entries))
	for i, e := range l.Entries {
		wonStr := "timed out"
		if e.Won {
			wonStr = "won"
		}
		fmt.Printf(" %2d. %s  %4d points  (%s, %s)\n",
			i+1, e.Token, e.Score, wonStr, e.EndedAt.Format(time.RFC3339))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
