// duosnake is a two-player Snake game for the terminal.
//
// Usage:
//
//	duosnake                 - Pick a mode from the menu
//	duosnake play [mode]     - Play duel (default) or solo
//	duosnake list            - List available modes
//	duosnake scores [mode]   - Show the best length per mode
//	duosnake keys            - Show the key bindings
//	duosnake config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Load configuration from a YAML file
//	--difficulty <name>  - easy, normal or hard tick speed
//	--tick <duration>    - Override the tick interval (e.g. 80ms)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--store <kind>       - High-score backend: file or sqlite
//	--db <path>          - High-score file directory or database path
//	--log-file <path>    - Write logs to this file
//	--debug              - Log at debug level
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/duosnake/internal/games/duel"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagTick       time.Duration
	flagSeed       int64
	flagStore      string
	flagDBPath     string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duosnake",
	Short: "Two-player Snake in your terminal",
	Long: `duosnake puts two snakes on one grid. Each player steers with their
own keys and eats only food of their own color. Hitting a wall, yourself or
the other snake ends the round; the survivor wins.

Available commands:
  play     - Start a round directly
  list     - Show available modes
  scores   - View high scores
  keys     - Show key bindings
  config   - Print the effective configuration

Run without a command to pick a mode from the menu.

Examples:
  duosnake
  duosnake play
  duosnake play solo --difficulty hard
  duosnake play --config ./my-duosnake.yaml --store sqlite`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.DurationVar(&flagTick, "tick", 0, "Tick interval, overrides config and difficulty (e.g. 80ms)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagStore, "store", "", "High-score backend: file or sqlite (default from config)")
	pf.StringVar(&flagDBPath, "db", "", "High-score location (default ~/.duosnake/highscores or ~/.duosnake/scores.db)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
