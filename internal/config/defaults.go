package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/duosnake.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/duosnake.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Width:       40,
			Height:      30,
			CellWidth:   2,
			FitToScreen: true,
		},
		Timing: TimingConfig{
			TickInterval:     100 * time.Millisecond,
			AutoRestartTicks: 0,
		},
		Controls: ControlsConfig{
			Pause:      []string{"p", "esc"},
			Restart:    []string{"r", "enter"},
			Quit:       []string{"q", "ctrl+c"},
			Screenshot: []string{"ctrl+s"},
		},
		Players: []PlayerConfig{
			{
				Name:      "Green",
				Color:     "green",
				Start:     StartPoint{X: 5, Y: 5},
				Direction: "right",
				Length:    1,
				Keys: KeyConfig{
					Up:    []string{"w"},
					Down:  []string{"s"},
					Left:  []string{"a"},
					Right: []string{"d"},
				},
			},
			{
				Name:      "Cyan",
				Color:     "cyan",
				Start:     StartPoint{X: -6, Y: -6},
				Direction: "left",
				Length:    1,
				Keys: KeyConfig{
					Up:    []string{"up"},
					Down:  []string{"down"},
					Left:  []string{"left"},
					Right: []string{"right"},
				},
			},
		},
		Storage: StorageConfig{
			Backend: "file",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
