package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/duosnake/internal/core"
)

// ErrInvalidConfig is returned by Validate for semantically invalid configuration.
var ErrInvalidConfig = errors.New("invalid config")

// Source names where a configuration was loaded from.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.duosnake/config.yaml -> ./configs/duosnake.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// Returns the configuration and the source it was taken from.
func Load(customPath string) (GameConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "duosnake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultGameConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	fillPlayerDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// fillPlayerDefaults fills fields a player entry left empty from the
// built-in player in the same seat. A decoded players list replaces the
// default list wholesale, so without this every field would be required.
func fillPlayerDefaults(cfg *GameConfig) {
	defaults := DefaultGameConfig().Players
	for i := range cfg.Players {
		if i >= len(defaults) {
			break
		}
		p, d := &cfg.Players[i], defaults[i]
		if p.Name == "" {
			p.Name = d.Name
		}
		if p.Color == "" {
			p.Color = d.Color
		}
		if p.Direction == "" {
			p.Direction = d.Direction
		}
		if p.Length == 0 {
			p.Length = d.Length
		}
		if p.Start == (StartPoint{}) {
			p.Start = d.Start
		}
		if len(p.Keys.All()) == 0 {
			p.Keys = d.Keys
		}
	}
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duosnake", "config.yaml")
}

// Validate checks the configuration for values the game cannot run with.
func (c GameConfig) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("%w: grid must be at least 4x4, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellWidth < 1 || c.Grid.CellWidth > 3 {
		return fmt.Errorf("%w: cell_width must be 1..3, got %d", ErrInvalidConfig, c.Grid.CellWidth)
	}
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	}
	if c.Timing.AutoRestartTicks < 0 {
		return fmt.Errorf("%w: auto_restart_ticks must not be negative", ErrInvalidConfig)
	}
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("%w: storage backend must be file or sqlite, got %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if len(c.Players) < 1 || len(c.Players) > 2 {
		return fmt.Errorf("%w: expected 1 or 2 players, got %d", ErrInvalidConfig, len(c.Players))
	}

	owners := make(map[string]string)
	claim := func(owner string, keys []string) error {
		for _, k := range keys {
			k = strings.ToLower(k)
			if prev, ok := owners[k]; ok && prev != owner {
				return fmt.Errorf("%w: key %q bound by both %s and %s", ErrInvalidConfig, k, prev, owner)
			}
			owners[k] = owner
		}
		return nil
	}
	for _, ctl := range [][]string{c.Controls.Pause, c.Controls.Restart, c.Controls.Quit, c.Controls.Screenshot} {
		if err := claim("controls", ctl); err != nil {
			return err
		}
	}

	starts := make(map[[2]int]int)
	colors := make(map[string]int)
	for i, p := range c.Players {
		who := fmt.Sprintf("player %d", i+1)
		color, err := core.ParseColor(p.Color)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, who, err)
		}
		if other, ok := colors[color.String()]; ok {
			return fmt.Errorf("%w: players %d and %d share the color %s", ErrInvalidConfig, other, i+1, color)
		}
		colors[color.String()] = i + 1
		dx, dy, ok := DirectionDelta(p.Direction)
		if !ok {
			return fmt.Errorf("%w: %s: unknown direction %q", ErrInvalidConfig, who, p.Direction)
		}
		if p.Length < 1 {
			return fmt.Errorf("%w: %s: length must be at least 1", ErrInvalidConfig, who)
		}
		if len(p.Keys.Up) == 0 || len(p.Keys.Down) == 0 || len(p.Keys.Left) == 0 || len(p.Keys.Right) == 0 {
			return fmt.Errorf("%w: %s: every direction needs a key", ErrInvalidConfig, who)
		}
		if err := claim(who, p.Keys.All()); err != nil {
			return err
		}

		x, y := p.Start.Resolve(c.Grid.Width, c.Grid.Height)
		tailX, tailY := x-dx*(p.Length-1), y-dy*(p.Length-1)
		if tailX < 0 || tailX >= c.Grid.Width || tailY < 0 || tailY >= c.Grid.Height {
			return fmt.Errorf("%w: %s: body of length %d does not fit behind start (%d, %d)", ErrInvalidConfig, who, p.Length, x, y)
		}
		if other, ok := starts[[2]int{x, y}]; ok {
			return fmt.Errorf("%w: players %d and %d start on the same cell", ErrInvalidConfig, other, i+1)
		}
		starts[[2]int{x, y}] = i + 1
	}
	return nil
}

// DirectionDelta maps a config direction name to a unit step.
func DirectionDelta(name string) (dx, dy int, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return 0, -1, true
	case "down":
		return 0, 1, true
	case "left":
		return -1, 0, true
	case "right":
		return 1, 0, true
	default:
		return 0, 0, false
	}
}
