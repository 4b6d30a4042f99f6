package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/games/duel"
	"github.com/vovakirdan/duosnake/internal/logging"
	"github.com/vovakirdan/duosnake/internal/match"
	"github.com/vovakirdan/duosnake/internal/storage"
)

func testGameConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Grid.Width = 20
	cfg.Grid.Height = 10
	cfg.Grid.FitToScreen = false
	return cfg
}

func newTestModel(t *testing.T, store storage.Store) (Model, *duel.Game) {
	t.Helper()
	cfg := testGameConfig()
	game := duel.New(cfg)
	m := NewModel(game, NewKeyMap(cfg, match.ModeDuel), core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 50 * time.Millisecond,
		Seed:         7,
	}, Options{
		Store:         store,
		Logger:        logging.Discard(),
		ScreenshotDir: t.TempDir(),
	})
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return m
}

func TestModelSteersImmediately(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, keyMsg("s"))
	m, _ = update(t, m, keyMsg("up"))

	if got := game.Snakes()[0].Direction(); got != duel.DirDown {
		t.Errorf("P1 direction = %v, expected down", got)
	}
	if got := game.Snakes()[1].Direction(); got != duel.DirUp {
		t.Errorf("P2 direction = %v, expected up", got)
	}

	// Second turn in the same tick is ignored.
	m, _ = update(t, m, keyMsg("a"))
	if got := game.Snakes()[0].Direction(); got != duel.DirDown {
		t.Errorf("P1 direction after second key = %v, expected down", got)
	}

	m = tick(t, m)
	m, _ = update(t, m, keyMsg("a"))
	if got := game.Snakes()[0].Direction(); got != duel.DirLeft {
		t.Errorf("P1 direction after tick = %v, expected left", got)
	}
	_ = m
}

func TestModelPauseWaitsForTick(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, keyMsg("p"))
	if game.State().Paused {
		t.Fatal("pause should apply on the next tick")
	}
	m = tick(t, m)
	if !game.State().Paused {
		t.Fatal("game should be paused after the tick")
	}

	head := game.Snakes()[0].Head()
	m = tick(t, m)
	if game.Snakes()[0].Head() != head {
		t.Error("snake moved while paused")
	}

	m, _ = update(t, m, keyMsg("esc"))
	tick(t, m)
	if game.State().Paused {
		t.Error("esc should resume the game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRoundOverSubmitsScoreOnce(t *testing.T) {
	store, err := storage.OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	m, game := newTestModel(t, store)
	first := m.Round().ID

	// Both snakes run straight into the walls.
	for i := 0; i < 100 && !game.State().GameOver; i++ {
		m = tick(t, m)
	}
	if !game.State().GameOver {
		t.Fatal("round should be over")
	}
	if m.Round().Outcome == nil {
		t.Fatal("finished round should carry an outcome")
	}
	if game.Tally().Rounds() != 1 {
		t.Errorf("tally rounds = %d, expected 1", game.Tally().Rounds())
	}

	best, err := store.HighScore("duel")
	if err != nil {
		t.Fatal(err)
	}
	if best == 0 || best != m.Best() {
		t.Errorf("stored best = %d, model best = %d", best, m.Best())
	}

	// Ticks on the round-over screen do not start a new round.
	m = tick(t, m)
	if m.Round().ID != first {
		t.Error("round changed before restart")
	}

	m, _ = update(t, m, keyMsg("r"))
	m = tick(t, m)
	if game.State().GameOver {
		t.Fatal("restart should start a new round")
	}
	if m.Round().ID == first {
		t.Error("restart should open a new round record")
	}
	if m.Round().Outcome != nil {
		t.Error("new round should not have an outcome yet")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = tick(t, m)
	head := game.Snakes()[0].Head()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if game.Snakes()[0].Head() != head {
		t.Error("resize with a fixed grid should keep the round")
	}
}

func TestModelResizeRestartOpensNewRound(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = tick(t, m)
	first := m.Round().ID

	// The fixed 20x10 grid no longer fits, so the board is torn down.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if m.Round().ID == first {
		t.Fatal("a round rebuilt by resize should get a new record")
	}
	small := m.Round().ID

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.Round().ID == small {
		t.Error("growing back should start another round record")
	}
	if len(game.Snakes()) != 2 {
		t.Errorf("snakes = %d after growing back", len(game.Snakes()))
	}
	if m.Round().Outcome != nil {
		t.Error("fresh round should not have an outcome")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t, nil)

	update(t, m, keyMsg("ctrl+s"))

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "duel_") {
		t.Fatalf("screenshot dir = %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(m.shotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Wins") {
		t.Errorf("screenshot should contain the HUD:\n%s", data)
	}
}

func TestModelViewFooter(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, expected 24", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "best 0") {
		t.Errorf("footer = %q", lines[len(lines)-1])
	}
}
