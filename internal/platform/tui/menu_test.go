package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/duosnake/internal/games/duel"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestMenuSelect(t *testing.T) {
	store, err := storage.OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Submit("solo", 12); err != nil {
		t.Fatal(err)
	}

	m, err := NewMenuModel(store, 80)
	if err != nil {
		t.Fatal(err)
	}
	view := m.View()
	if !strings.Contains(view, "Snake Duel") || !strings.Contains(view, "best 12") {
		t.Errorf("menu view missing entries:\n%s", view)
	}

	m, _ = updateMenu(t, m, keyMsg("down"))
	m, _ = updateMenu(t, m, keyMsg("down")) // Stays on the last item
	m, cmd := updateMenu(t, m, keyMsg("enter"))

	if got := m.Selected(); got != "solo" {
		t.Errorf("Selected() = %q, expected %q", got, "solo")
	}
	if cmd == nil {
		t.Fatal("selecting should quit the menu")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestMenuQuit(t *testing.T) {
	m, err := NewMenuModel(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	m, cmd := updateMenu(t, m, keyMsg("q"))
	if cmd == nil || m.Selected() != "" {
		t.Errorf("quit should leave nothing selected, got %q", m.Selected())
	}
}

func TestMenuReportsStoreErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "duel"), []byte("not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := storage.OpenFile(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewMenuModel(store, 80); err == nil {
		t.Error("a corrupt score file should be reported")
	}
}

func TestScoreTable(t *testing.T) {
	store, err := storage.OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Submit("duel", 7); err != nil {
		t.Fatal(err)
	}

	rows, err := LoadScoreRows(store, registry.List())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].GameID != "duel" || rows[0].Best != 7 || rows[1].Best != 0 {
		t.Fatalf("rows = %+v", rows)
	}

	out := RenderScoreTable(rows)
	for _, want := range []string{"Best length", "duel", "Snake Duel", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
