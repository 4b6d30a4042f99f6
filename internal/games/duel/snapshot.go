package duel

import "github.com/vovakirdan/duosnake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateRoundOver   GameStateType = "round_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// SnakeSnapshot captures one snake.
type SnakeSnapshot struct {
	Len     int
	Head    core.Point
	Dir     Direction
	JustAte bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	GridW  int
	GridH  int
	Snakes []SnakeSnapshot
	Foods  []core.Point
	Winner core.PlayerID
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.roundOver:
		state = StateRoundOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Mode:   g.ID(),
		GridW:  g.arena.W,
		GridH:  g.arena.H,
		Winner: g.outcome.Winner,
		State:  state,
	}
	for _, s := range g.snakes {
		snap.Snakes = append(snap.Snakes, SnakeSnapshot{
			Len:     s.Len(),
			Head:    s.Head(),
			Dir:     s.dir,
			JustAte: s.justAte,
		})
	}
	for _, f := range g.foods {
		snap.Foods = append(snap.Foods, f.Pos)
	}
	return snap
}
