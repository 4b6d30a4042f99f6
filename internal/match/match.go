// Package match tracks rounds and the running score between local players.
package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/duosnake/internal/core"
)

// RoundID uniquely identifies a round.
type RoundID string

// Mode defines how many players take part.
type Mode int

const (
	// ModeSolo is the classic single-snake game.
	ModeSolo Mode = iota
	// ModeDuel is two local players sharing one keyboard.
	ModeDuel
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSolo:
		return "Solo"
	case ModeDuel:
		return "Duel"
	default:
		return "Unknown"
	}
}

// DeathCause explains why a snake died.
type DeathCause string

const (
	CauseNone       DeathCause = ""
	CauseWall       DeathCause = "wall-collision"
	CauseSelf       DeathCause = "self-collision"
	CauseSnake      DeathCause = "snake-collision"
	CauseHeadToHead DeathCause = "head-collision"
)

// Outcome is the result of a finished round.
type Outcome struct {
	Winner  core.PlayerID // PlayerNone on a draw or in solo mode
	Draw    bool          // Every snake died on the same tick
	Lengths []int         // Final length per seat
	Causes  []DeathCause  // Death cause per seat, CauseNone for survivors
	Ticks   uint64        // Ticks the round lasted
}

// Best returns the longest final length.
func (o Outcome) Best() int {
	best := 0
	for _, l := range o.Lengths {
		best = max(best, l)
	}
	return best
}

// Round describes one round from start to game over.
type Round struct {
	ID        RoundID
	Mode      Mode
	StartedAt time.Time
	EndedAt   time.Time
	Outcome   *Outcome // nil while the round is running
}

// NewRound starts a round with a fresh ID.
func NewRound(mode Mode, now time.Time) *Round {
	return &Round{
		ID:        RoundID(uuid.NewString()),
		Mode:      mode,
		StartedAt: now,
	}
}

// Finish stores the outcome. Finishing twice keeps the first outcome.
func (r *Round) Finish(o Outcome, now time.Time) {
	if r.Outcome != nil {
		return
	}
	r.Outcome = &o
	r.EndedAt = now
}

// Duration returns how long the round ran; zero while running.
func (r *Round) Duration() time.Duration {
	if r.Outcome == nil {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Tally counts wins and draws across the rounds of one session.
type Tally struct {
	wins   map[core.PlayerID]int
	draws  int
	rounds int
	best   int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{wins: make(map[core.PlayerID]int)}
}

// Record adds a finished round.
func (t *Tally) Record(o Outcome) {
	t.rounds++
	switch {
	case o.Draw:
		t.draws++
	case o.Winner != core.PlayerNone:
		t.wins[o.Winner]++
	}
	t.best = max(t.best, o.Best())
}

// Wins returns the number of rounds won by the player.
func (t *Tally) Wins(p core.PlayerID) int {
	return t.wins[p]
}

// Draws returns the number of drawn rounds.
func (t *Tally) Draws() int {
	return t.draws
}

// Rounds returns the number of recorded rounds.
func (t *Tally) Rounds() int {
	return t.rounds
}

// Best returns the longest snake seen this session.
func (t *Tally) Best() int {
	return t.best
}
