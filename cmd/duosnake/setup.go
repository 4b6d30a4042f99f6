package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/games/duel"
	"github.com/vovakirdan/duosnake/internal/logging"
	"github.com/vovakirdan/duosnake/internal/storage"
)

// loadConfig loads the configuration and applies the command-line overrides.
func loadConfig() (config.GameConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, "", err
	}

	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.GameConfig{}, "", err
	}
	if flagTick > 0 {
		cfg.Timing.TickInterval = flagTick
	}
	if flagStore != "" {
		cfg.Storage.Backend = flagStore
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, "", err
	}

	// Games created through the registry pick this up.
	duel.SetConfig(cfg)
	return cfg, source, nil
}

// openStore opens the configured high-score backend.
func openStore(cfg config.GameConfig) (storage.Store, error) {
	return storage.Open(storage.Kind(cfg.Storage.Backend), cfg.Storage.Path)
}

// openLogger opens the log file named by --log-file, or a discarding logger.
func openLogger() (*log.Logger, io.Closer) {
	logger, closer, err := logging.Open(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(cfg config.GameConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickInterval = cfg.Timing.TickInterval
	rc.Seed = flagSeed
	return rc
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
