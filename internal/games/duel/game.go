// Package duel implements two-player Snake on a shared grid, plus the
// classic single-snake rules as a solo mode.
package duel

import (
	"math/rand"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/match"
	"github.com/vovakirdan/duosnake/internal/registry"
)

// Layout rows around the arena: HUD line plus top and bottom border.
const (
	hudHeight  = 1
	minGridW   = 8
	minGridH   = 6
	borderSize = 1
)

// Game implements the Snake duel.
type Game struct {
	cfg  config.GameConfig
	mode match.Mode
	rng  *rand.Rand
	tick uint64

	snakes []*Snake
	foods  []Food

	// Grid and screen layout
	arena   core.Rect // In cells, always at origin
	frame   core.Rect // Border box on screen
	cellW   int
	offsetX int // Screen column of cell (0, 0)
	offsetY int // Screen row of cell (0, 0)
	screenW int
	screenH int

	// Game state flags
	roundOver bool
	paused    bool
	tooSmall  bool
	overTicks int // Ticks spent on the round-over screen
	rounds    int // Rounds started, including restarts forced by a resize
	outcome   match.Outcome

	tally *match.Tally
}

// Package-level config used by the registry factories.
var activeConfig = config.DefaultGameConfig()

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.GameConfig) {
	activeConfig = cfg
}

// New creates a two-player game.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg, mode: match.ModeDuel, tally: match.NewTally()}
}

// NewSolo creates a single-snake game using the first configured player.
func NewSolo(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg, mode: match.ModeSolo, tally: match.NewTally()}
}

func init() {
	registry.Register("duel", func() registry.Game {
		return New(activeConfig)
	})
	registry.Register("solo", func() registry.Game {
		return NewSolo(activeConfig)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == match.ModeSolo {
		return "solo"
	}
	return "duel"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == match.ModeSolo {
		return "Snake"
	}
	return "Snake Duel"
}

// Mode returns whether this is a solo or duel game.
func (g *Game) Mode() match.Mode {
	return g.mode
}

// Players returns the number of snakes in play.
func (g *Game) Players() int {
	if g.mode == match.ModeSolo || len(g.cfg.Players) < 2 {
		return 1
	}
	return 2
}

// Reset starts a new round: snakes and foods are recreated wholesale.
// The session tally is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.startRound()
}

// Resize adapts the layout to a new screen size. The round restarts only if
// the playable grid changes size.
func (g *Game) Resize(w, h int) {
	prevArena, prevSmall := g.arena, g.tooSmall
	g.screenW, g.screenH = w, h
	g.layout()
	if g.arena != prevArena || g.tooSmall != prevSmall {
		g.startRound()
	}
}

// layout computes the grid size and where it sits on screen.
func (g *Game) layout() {
	g.cellW = max(1, g.cfg.Grid.CellWidth)
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height

	availW := (g.screenW - 2*borderSize) / g.cellW
	availH := g.screenH - hudHeight - 2*borderSize
	if g.cfg.Grid.FitToScreen {
		w, h = min(w, availW), min(h, availH)
		g.tooSmall = w < minGridW || h < minGridH
	} else {
		g.tooSmall = w > availW || h > availH
	}

	g.arena = core.NewRect(0, 0, max(0, w), max(0, h))
	boxW := g.arena.W*g.cellW + 2*borderSize
	g.frame = core.NewRect(max(0, (g.screenW-boxW)/2), hudHeight, boxW, g.arena.H+2*borderSize)
	field := g.frame.Inset(borderSize)
	g.offsetX, g.offsetY = field.X, field.Y
}

func (g *Game) startRound() {
	g.rounds++
	g.tick = 0
	g.roundOver = false
	g.paused = false
	g.overTicks = 0
	g.outcome = match.Outcome{}
	g.snakes = nil
	g.foods = nil

	g.layout()
	if g.tooSmall {
		return
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}

	for i := 0; i < g.Players(); i++ {
		p := g.cfg.Players[i]
		color, _ := core.ParseColor(p.Color)
		dx, dy, _ := config.DirectionDelta(p.Direction)
		dir := directionOf(dx, dy)
		x, y := p.Start.Resolve(g.arena.W, g.arena.H)
		head := g.freeCellNear(core.Pt(x, y))
		g.snakes = append(g.snakes, newSnake(p.Name, color, head, dir, p.Length, g.arena, func(c core.Point) bool {
			return g.occupied(c, -1)
		}))
	}

	g.foods = make([]Food, len(g.snakes))
	for i, s := range g.snakes {
		g.foods[i] = Food{Pos: noFood, Color: s.Color}
	}
	for i := range g.foods {
		g.spawnFood(i)
	}
}

// freeCellNear returns p if no snake occupies it, otherwise the first free
// cell scanning row by row from p. Only needed when a shrunken grid folds
// two start positions onto each other.
func (g *Game) freeCellNear(p core.Point) core.Point {
	total := g.arena.Area()
	start := p.Y*g.arena.W + p.X
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		c := core.Pt(idx%g.arena.W, idx/g.arena.W)
		if !g.occupied(c, -1) {
			return c
		}
	}
	return p
}

// Steer routes a directional action to the player's snake.
// Returns true if the snake's heading changed.
func (g *Game) Steer(player core.PlayerID, a core.Action) bool {
	if g.roundOver || g.paused || g.tooSmall {
		return false
	}
	idx := player.Index()
	if idx < 0 || idx >= len(g.snakes) {
		return false
	}
	dir, ok := DirectionFor(a)
	if !ok {
		return false
	}
	return g.snakes[idx].Steer(dir)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if g.roundOver && (input.Has(core.ActionRestart) || input.Has(core.ActionConfirm)) {
		g.startRound()
		return core.StepResult{State: g.State()}
	}

	if g.roundOver {
		g.overTicks++
		if n := g.cfg.Timing.AutoRestartTicks; n > 0 && g.overTicks >= n {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	ended := g.moveSnakes()
	return core.StepResult{State: g.State(), RoundOver: ended}
}

// plannedMove is where a snake's head goes this tick.
type plannedMove struct {
	head core.Point
	food int // Index of matching food eaten, or -1
}

func (m plannedMove) grows() bool {
	return m.food >= 0
}

// moveSnakes moves every snake one cell at the same time.
// Returns true if the move ended the round.
func (g *Game) moveSnakes() bool {
	moves := make([]plannedMove, len(g.snakes))
	for i, s := range g.snakes {
		head := s.next()
		m := plannedMove{head: head, food: -1}
		if fi := g.foodAt(head); fi >= 0 && g.foods[fi].Color == s.Color {
			m.food = fi
		}
		moves[i] = m
	}

	causes := g.collisions(moves)
	for _, c := range causes {
		if c != match.CauseNone {
			g.endRound(causes)
			return true
		}
	}

	for i, s := range g.snakes {
		s.advance(moves[i].head, moves[i].grows())
	}
	// Respawn after every snake has moved so new food avoids the new bodies.
	for _, m := range moves {
		if m.grows() {
			g.spawnFood(m.food)
		}
	}
	return false
}

// collisions resolves the planned moves against walls and bodies.
// In solo mode the classic rule applies: the whole body, tail included,
// blocks the head.
func (g *Game) collisions(moves []plannedMove) []match.DeathCause {
	causes := make([]match.DeathCause, len(g.snakes))
	for i, s := range g.snakes {
		head := moves[i].head
		switch {
		case !g.arena.Contains(head):
			causes[i] = match.CauseWall
		case s.occupiesAfterMove(head, moves[i].grows() || g.mode == match.ModeSolo):
			causes[i] = match.CauseSelf
		default:
			for j, other := range g.snakes {
				if j == i {
					continue
				}
				swapped := head == other.Head() && moves[j].head == s.Head()
				if head == moves[j].head || swapped {
					causes[i] = match.CauseHeadToHead
					break
				}
				if other.occupiesAfterMove(head, moves[j].grows()) {
					causes[i] = match.CauseSnake
					break
				}
			}
		}
	}
	return causes
}

func (g *Game) endRound(causes []match.DeathCause) {
	g.roundOver = true
	g.overTicks = 0

	o := match.Outcome{
		Lengths: make([]int, len(g.snakes)),
		Causes:  causes,
		Ticks:   g.tick,
	}
	var alive []int
	for i, s := range g.snakes {
		o.Lengths[i] = s.Len()
		if causes[i] == match.CauseNone {
			alive = append(alive, i)
		}
	}
	if len(g.snakes) > 1 {
		switch len(alive) {
		case 0:
			o.Draw = true
		case 1:
			o.Winner = core.PlayerAt(alive[0])
		}
	}
	g.outcome = o
	g.tally.Record(o)
}

// State returns the current game state.
// The score is the length of the longest snake.
func (g *Game) State() core.GameState {
	score := 0
	for _, s := range g.snakes {
		score = max(score, s.Len())
	}
	return core.GameState{
		Score:    score,
		GameOver: g.roundOver,
		Paused:   g.paused,
	}
}

// Outcome returns the result of the last round; ok is false while a round is running.
func (g *Game) Outcome() (match.Outcome, bool) {
	return g.outcome, g.roundOver
}

// RoundNumber counts the rounds started since the game was created.
// It changes whenever the board is rebuilt, whatever the reason.
func (g *Game) RoundNumber() int {
	return g.rounds
}

// Tally returns the win counts for this session.
func (g *Game) Tally() *match.Tally {
	return g.tally
}

// Snakes returns the snakes in seat order.
func (g *Game) Snakes() []*Snake {
	return g.snakes
}

// Foods returns the foods in seat order.
func (g *Game) Foods() []Food {
	return append([]Food(nil), g.foods...)
}

// Arena returns the playable grid in cells.
func (g *Game) Arena() core.Rect {
	return g.arena
}
