package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/match"
)

// PlayerKeys holds the steering bindings of one snake.
type PlayerKeys struct {
	Name  string
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

// KeyMap translates Bubble Tea key messages to player actions.
// It is built from the configuration so bindings stay in one place.
type KeyMap struct {
	Players    []PlayerKeys
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings for the given mode.
// In solo mode the single snake answers to every player's keys.
func NewKeyMap(cfg config.GameConfig, mode match.Mode) KeyMap {
	km := KeyMap{
		Pause:      binding(cfg.Controls.Pause, "pause"),
		Restart:    binding(cfg.Controls.Restart, "restart"),
		Quit:       binding(cfg.Controls.Quit, "quit"),
		Screenshot: binding(cfg.Controls.Screenshot, "screenshot"),
	}

	players := cfg.Players
	if mode == match.ModeSolo && len(players) > 0 {
		merged := players[0]
		for _, p := range players[1:] {
			merged.Keys = merged.Keys.Merge(p.Keys)
		}
		players = []config.PlayerConfig{merged}
	}

	for _, p := range players {
		km.Players = append(km.Players, PlayerKeys{
			Name:  p.Name,
			Up:    binding(p.Keys.Up, p.Name+" up"),
			Down:  binding(p.Keys.Down, p.Name+" down"),
			Left:  binding(p.Keys.Left, p.Name+" left"),
			Right: binding(p.Keys.Right, p.Name+" right"),
		})
	}
	return km
}

// binding creates a key.Binding whose help shows every bound key.
// Single letters also match their upper-case form so Caps Lock does not steal input.
func binding(keys []string, desc string) key.Binding {
	all := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		all = append(all, k)
		if r := []rune(k); len(r) == 1 && unicode.IsLower(r[0]) {
			all = append(all, string(unicode.ToUpper(r[0])))
		}
	}
	return key.NewBinding(
		key.WithKeys(all...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Resolve maps a key press to the player it belongs to and the action it triggers.
// Global controls return PlayerNone. Unbound keys return ActionNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.PlayerNone, core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.PlayerNone, core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.PlayerNone, core.ActionRestart
	}

	for i, p := range k.Players {
		player := core.PlayerAt(i)
		switch {
		case key.Matches(msg, p.Up):
			return player, core.ActionUp
		case key.Matches(msg, p.Down):
			return player, core.ActionDown
		case key.Matches(msg, p.Left):
			return player, core.ActionLeft
		case key.Matches(msg, p.Right):
			return player, core.ActionRight
		}
	}
	return core.PlayerNone, core.ActionNone
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Screenshot, k.Quit}
}

// FullHelp returns one column per player plus the shared controls.
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := make([][]key.Binding, 0, len(k.Players)+1)
	for _, p := range k.Players {
		groups = append(groups, []key.Binding{p.Up, p.Down, p.Left, p.Right})
	}
	return append(groups, k.ShortHelp())
}
