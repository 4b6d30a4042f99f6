// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"time"

	"github.com/vovakirdan/duosnake/internal/core"
)

// GameConfig contains all configuration for a duosnake session.
type GameConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Timing   TimingConfig   `yaml:"timing"`
	Controls ControlsConfig `yaml:"controls"`
	Players  []PlayerConfig `yaml:"players"`
	Storage  StorageConfig  `yaml:"storage"`
}

// GridConfig defines the play area.
type GridConfig struct {
	Width       int  `yaml:"width"`         // Cells across
	Height      int  `yaml:"height"`        // Cells down
	CellWidth   int  `yaml:"cell_width"`    // Terminal columns per cell
	FitToScreen bool `yaml:"fit_to_screen"` // Shrink the grid to fit the terminal
}

// TimingConfig defines the tick clock.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	// AutoRestartTicks starts the next round automatically after this many
	// ticks on the round-over screen. 0 waits for a key press.
	AutoRestartTicks int `yaml:"auto_restart_ticks"`
}

// ControlsConfig holds the keys shared by both players.
type ControlsConfig struct {
	Pause      []string `yaml:"pause"`
	Restart    []string `yaml:"restart"`
	Quit       []string `yaml:"quit"`
	Screenshot []string `yaml:"screenshot"`
}

// StorageConfig selects where the high score is kept.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // Empty means the backend's default under ~/.duosnake
}

// PlayerConfig defines one snake and the food it eats.
type PlayerConfig struct {
	Name      string     `yaml:"name"`
	Color     string     `yaml:"color"`
	Start     StartPoint `yaml:"start"`
	Direction string     `yaml:"direction"`
	Length    int        `yaml:"length"`
	Keys      KeyConfig  `yaml:"keys"`
}

// StartPoint is the head position at round start.
// Negative values count back from the far edge, so -1 is the last column/row.
type StartPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Resolve returns the absolute cell for a grid of the given size,
// clamped inside the grid.
func (p StartPoint) Resolve(w, h int) (int, int) {
	x, y := p.X, p.Y
	if x < 0 {
		x += w
	}
	if y < 0 {
		y += h
	}
	return core.Clamp(x, 0, w-1), core.Clamp(y, 0, h-1)
}

// KeyConfig lists the keys that steer one snake.
type KeyConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// All returns every key bound for this player.
func (k KeyConfig) All() []string {
	all := make([]string, 0, len(k.Up)+len(k.Down)+len(k.Left)+len(k.Right))
	all = append(all, k.Up...)
	all = append(all, k.Down...)
	all = append(all, k.Left...)
	all = append(all, k.Right...)
	return all
}

// Merge returns the union of two key sets, used by the single-player mode.
func (k KeyConfig) Merge(other KeyConfig) KeyConfig {
	return KeyConfig{
		Up:    append(append([]string{}, k.Up...), other.Up...),
		Down:  append(append([]string{}, k.Down...), other.Down...),
		Left:  append(append([]string{}, k.Left...), other.Left...),
		Right: append(append([]string{}, k.Right...), other.Right...),
	}
}
