package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			// Remember the token so get/reveal can omit it
			if err := cfg.SaveToken(result.Token); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [token]",
		Short: "Get the state of a game",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := resolveToken(args)
			if err != nil {
				return err
			}

			var result Game
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", token), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <row> <col> [token]",
		Short: "Reveal the tile at (row, col)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row: %w", err)
			}

			col, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid col: %w", err)
			}

			token, err := resolveToken(args[2:])
			if err != nil {
				return err
			}

			req := map[string]int{"row": row, "col": col}
			var result Game

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/reveal", token), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top finished games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard

			if err := client.Get(fmt.Sprintf("/api/v1/leaderboard?limit=%d", limit), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries to show")

	return cmd
}

// resolveToken prefers an explicit argument over the saved/config token
func resolveToken(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Token != "" {
		return cfg.Token, nil
	}
	return "", fmt.Errorf("no game token: pass one as an argument or run 'create' first")
}
