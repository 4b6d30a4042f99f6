package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duosnake/internal/match"
	"github.com/vovakirdan/duosnake/internal/platform/tui"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [duel|solo]",
	Short: "Start a round",
	Long: `Start playing the given mode (duel by default).

Default controls:
  W/A/S/D    - Green snake
  Arrows     - Cyan snake (solo: either set)
  P/Esc      - Pause
  R/Enter    - Next round (after a round ends)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 150ms per tick
  normal - 100ms per tick
  hard   - 60ms per tick

Examples:
  duosnake play
  duosnake play solo
  duosnake play --difficulty hard --seed 42
  duosnake play --store sqlite --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "duel"
	if len(args) == 1 {
		gameID = args[0]
	}
	if err := playGame(gameID); err != nil {
		fail("%v", err)
	}
}

// playGame runs one game until the player quits.
func playGame(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'duosnake list' to see available modes)", gameID)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logCloser := openLogger()
	defer logCloser.Close()
	logger.Info("config loaded", "source", source, "tick", cfg.Timing.TickInterval, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height))

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	var store storage.Store
	if s, err := openStore(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high scores: %v\n", err)
		logger.Warn("high scores disabled", "error", err)
		// Continue without storage - game still works
	} else {
		store = s
		defer store.Close()
	}

	mode := match.ModeDuel
	if m, ok := game.(interface{ Mode() match.Mode }); ok {
		mode = m.Mode()
	}

	err = tui.Run(game, tui.NewKeyMap(cfg, mode), runtimeConfig(cfg), tui.Options{
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
