package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/match"
)

// keyMsg builds the key message Bubble Tea sends for a key name.
func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func TestKeyMapResolveDuel(t *testing.T) {
	km := NewKeyMap(config.DefaultGameConfig(), match.ModeDuel)

	tests := []struct {
		key    string
		player core.PlayerID
		action core.Action
	}{
		{"w", core.Player1, core.ActionUp},
		{"s", core.Player1, core.ActionDown},
		{"a", core.Player1, core.ActionLeft},
		{"d", core.Player1, core.ActionRight},
		{"D", core.Player1, core.ActionRight},
		{"up", core.Player2, core.ActionUp},
		{"down", core.Player2, core.ActionDown},
		{"left", core.Player2, core.ActionLeft},
		{"right", core.Player2, core.ActionRight},
		{"p", core.PlayerNone, core.ActionPause},
		{"esc", core.PlayerNone, core.ActionPause},
		{"r", core.PlayerNone, core.ActionRestart},
		{"enter", core.PlayerNone, core.ActionRestart},
		{"q", core.PlayerNone, core.ActionQuit},
		{"ctrl+c", core.PlayerNone, core.ActionQuit},
		{"x", core.PlayerNone, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			player, action := km.Resolve(keyMsg(tc.key))
			if player != tc.player || action != tc.action {
				t.Errorf("Resolve(%q) = (%v, %v), expected (%v, %v)", tc.key, player, action, tc.player, tc.action)
			}
		})
	}
}

func TestKeyMapSoloMergesKeys(t *testing.T) {
	km := NewKeyMap(config.DefaultGameConfig(), match.ModeSolo)
	if len(km.Players) != 1 {
		t.Fatalf("solo keymap has %d players, expected 1", len(km.Players))
	}

	for _, k := range []string{"w", "up"} {
		player, action := km.Resolve(keyMsg(k))
		if player != core.Player1 || action != core.ActionUp {
			t.Errorf("Resolve(%q) = (%v, %v), expected (P1, Up)", k, player, action)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.DefaultGameConfig(), match.ModeDuel)

	full := km.FullHelp()
	if len(full) != 3 {
		t.Fatalf("FullHelp() has %d groups, expected 3", len(full))
	}
	if got := full[0][0].Help(); got.Key != "w" || got.Desc != "Green up" {
		t.Errorf("first binding help = %+v", got)
	}
	if got := km.Pause.Help().Key; got != "p/esc" {
		t.Errorf("pause help key = %q, expected %q", got, "p/esc")
	}
	if len(km.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", len(km.ShortHelp()))
	}
}
