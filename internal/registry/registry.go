// Package registry maps game mode IDs ("duel", "solo") to factories.
// Modes register from init(), so the CLI and the menu can list and start
// them by ID without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/duosnake/internal/core"
)

// Game is one playable mode. Implementations only touch core types;
// key handling, the tick clock and drawing to the terminal belong to the
// platform layer.
type Game interface {
	// ID names the mode on the command line and keys its high score.
	ID() string

	// Title is shown in the HUD and the menu.
	Title() string

	// Reset lays out the board for the given screen and seeds food placement.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board, HUD and overlays into dst.
	Render(dst *core.Screen)

	// State reports the score to persist and whether the round is over or paused.
	State() core.GameState
}

// Steerable is implemented by games that take directional input as soon as
// a key is pressed rather than on the next tick.
type Steerable interface {
	// Steer applies a directional action for a player.
	// Returns true if the input changed the game.
	Steer(player core.PlayerID, a core.Action) bool
}

// Resizable is implemented by games that can adapt to a new screen size
// without a full Reset.
type Resizable interface {
	Resize(w, h int)
}

// GameInfo is a registered mode as listed by the menu and the scores command.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game for one session.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns the registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
