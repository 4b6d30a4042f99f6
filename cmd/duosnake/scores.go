package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duosnake/internal/platform/tui"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the longest snake recorded for each mode, or for one mode.

Examples:
  duosnake scores
  duosnake scores solo
  duosnake scores --store sqlite
  duosnake scores solo --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Forget the listed high scores before showing them")
}

func runScores(_ *cobra.Command, args []string) {
	games := registry.List()
	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'duosnake list' to see available modes.")
			os.Exit(1)
		}
		games = filterGames(games, gameID)
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		fail("opening high scores: %v", err)
	}

	if flagClear {
		if err := clearScores(store, games); err != nil {
			store.Close()
			fail("%v", err)
		}
	}

	rows, err := tui.LoadScoreRows(store, games)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}
	defer store.Close()

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Println(tui.RenderScoreTable(rows))
}

func filterGames(games []registry.GameInfo, id string) []registry.GameInfo {
	for _, g := range games {
		if g.ID == id {
			return []registry.GameInfo{g}
		}
	}
	return nil
}

// clearScores resets the high score of every listed game.
func clearScores(store storage.Store, games []registry.GameInfo) error {
	for _, g := range games {
		if err := store.Clear(g.ID); err != nil {
			return fmt.Errorf("clearing %s: %w", g.ID, err)
		}
	}
	return nil
}
