package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duosnake/internal/match"
	"github.com/vovakirdan/duosnake/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Lists the keys of each player and the shared controls from the effective configuration.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	km := tui.NewKeyMap(cfg, match.ModeDuel)
	for _, group := range km.FullHelp() {
		for _, b := range group {
			h := b.Help()
			fmt.Printf("  %-16s %s\n", h.Key, h.Desc)
		}
		fmt.Println()
	}
}
