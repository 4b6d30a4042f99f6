package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/logging"
	"github.com/vovakirdan/duosnake/internal/match"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

// footerHeight is the number of rows below the game reserved for help.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Options holds the optional collaborators of a Model.
type Options struct {
	Store         storage.Store // High scores; nil disables persistence
	Logger        *log.Logger   // Nil discards log output
	ScreenshotDir string        // Defaults to ~/.duosnake/screenshots
}

// roundReporter is implemented by games that number their rounds and
// report how each one ended.
type roundReporter interface {
	Mode() match.Mode
	Outcome() (match.Outcome, bool)
	RoundNumber() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	keys       KeyMap
	help       help.Model
	screen     *core.Screen
	store      storage.Store
	logger     *log.Logger
	shotDir    string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	round      *match.Round
	roundNum   int // Game round the record belongs to
	best       int
	quitting   bool
	scoreSaved bool // Whether the score has been submitted for the current round
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, keys KeyMap, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = defaultScreenshotDir()
	}

	m := Model{
		game:       game,
		keys:       keys,
		help:       help.New(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		store:      opts.Store,
		logger:     logger,
		shotDir:    shotDir,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}

	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.best = m.loadBest()
	if r, ok := m.game.(roundReporter); ok {
		m.roundNum = r.RoundNumber()
	}
	m.startRound()
	return m
}

// gameConfig returns the runtime config with the footer rows removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-footerHeight)
	return cfg
}

func (m Model) mode() match.Mode {
	if r, ok := m.game.(roundReporter); ok {
		return r.Mode()
	}
	return match.ModeSolo
}

func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
		return 0
	}
	return best
}

// startRound opens the bookkeeping record for a new round.
func (m *Model) startRound() {
	m.round = match.NewRound(m.mode(), time.Now())
	m.scoreSaved = false
	m.logger.Debug("round started", "round", m.round.ID, "game", m.game.ID(), "mode", m.round.Mode)
}

// syncRound opens a new round record when the game has moved on to a new
// round. Games without round numbers are followed through the game-over edge.
func (m *Model) syncRound(wasOver bool) {
	r, ok := m.game.(roundReporter)
	if !ok {
		if wasOver && !m.gameState.GameOver {
			m.startRound()
		}
		return
	}
	n := r.RoundNumber()
	if n == m.roundNum {
		return
	}
	if m.round.Outcome == nil {
		m.logger.Info("round abandoned", "round", m.round.ID, "game", m.game.ID())
	}
	m.roundNum = n
	m.startRound()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Directional keys steer immediately; everything else waits for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	player, action := m.keys.Resolve(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsDirection():
		if s, ok := m.game.(registry.Steerable); ok {
			s.Steer(player, action)
		} else {
			m.inputFrame.Set(action)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	m.help.Width = msg.Width

	wasOver := m.gameState.GameOver
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
	} else if !wasOver {
		m.game.Reset(gc)
	}
	m.gameState = m.game.State()
	m.syncRound(wasOver)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.RoundOver {
		m.finishRound()
	}
	m.syncRound(wasOver)

	return m, tickCmd(m.config.TickInterval)
}

// finishRound logs the outcome and submits the score once per round.
func (m *Model) finishRound() {
	fields := []any{"round", m.round.ID, "game", m.game.ID(), "score", m.gameState.Score}
	if r, ok := m.game.(roundReporter); ok {
		if o, over := r.Outcome(); over {
			m.round.Finish(o, time.Now())
			fields = append(fields,
				"winner", o.Winner,
				"draw", o.Draw,
				"lengths", o.Lengths,
				"causes", o.Causes,
				"ticks", o.Ticks,
				"duration", m.round.Duration().Round(time.Millisecond),
			)
		}
	}
	m.logger.Info("round over", fields...)

	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	improved, err := m.store.Submit(m.game.ID(), m.gameState.Score)
	if err != nil {
		m.logger.Warn("could not save high score", "game", m.game.ID(), "error", err)
		return
	}
	if improved {
		m.best = m.gameState.Score
		m.logger.Info("new high score", "game", m.game.ID(), "score", m.best)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".duosnake", "screenshots")
	}
	return filepath.Join(home, ".duosnake", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer shows the shared controls and the persisted best score.
func (m Model) footer() string {
	best := fmt.Sprintf("best %d", m.best)
	return m.help.View(m.keys) + footerStyle.Render("  •  "+best)
}

// Best returns the persisted high score for the running game.
func (m Model) Best() int {
	return m.best
}

// Round returns the round in progress or the one just finished.
func (m Model) Round() *match.Round {
	return m.round
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, keys KeyMap, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, keys, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
