package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named game speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TickIntervalForPreset returns the tick interval for a difficulty preset.
func TickIntervalForPreset(preset DifficultyPreset) (time.Duration, error) {
	switch preset {
	case DifficultyEasy:
		return 150 * time.Millisecond, nil
	case DifficultyNormal:
		return 100 * time.Millisecond, nil
	case DifficultyHard:
		return 60 * time.Millisecond, nil
	default:
		return 0, fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, preset)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	interval, err := TickIntervalForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Timing.TickInterval = interval
	return nil
}
