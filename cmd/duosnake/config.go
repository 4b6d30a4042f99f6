package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duosnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after applying the config file, difficulty and
flags, as YAML. Save it to ~/.duosnake/config.yaml to customise the game.

Examples:
  duosnake config > ~/.duosnake/config.yaml
  duosnake config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data) //nolint:errcheck // Stdout failures are not actionable
}
