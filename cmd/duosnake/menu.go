package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duosnake/internal/platform/tui"
	"github.com/vovakirdan/duosnake/internal/storage"
)

// runMenu shows the mode picker and starts the chosen mode.
func runMenu(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	var store storage.Store
	if s, err := openStore(cfg); err == nil {
		store = s
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	gameID, err := tui.RunMenu(store, width)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if gameID == "" {
		return
	}
	if err := playGame(gameID); err != nil {
		fail("%v", err)
	}
}
