package duel

import "github.com/vovakirdan/duosnake/internal/core"

// noFood marks a food that could not be placed because the board is full.
var noFood = core.Pt(-1, -1)

// Food is a single cell that only the snake of the same color can eat.
type Food struct {
	Pos   core.Point
	Color core.Color
}

// Present reports whether the food is on the board.
func (f Food) Present() bool {
	return f.Pos != noFood
}

// spawnFood places food i at a random empty cell.
// A cell is empty when no snake and no other food occupies it.
func (g *Game) spawnFood(i int) {
	var emptyCells []core.Point
	for y := 0; y < g.arena.H; y++ {
		for x := 0; x < g.arena.W; x++ {
			p := core.Pt(x, y)
			if !g.occupied(p, i) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		g.foods[i].Pos = noFood
		return
	}
	g.foods[i].Pos = emptyCells[g.rng.Intn(len(emptyCells))]
}

// occupied is the arena's lookup helper: it reports whether any snake or any
// food other than skipFood covers p.
func (g *Game) occupied(p core.Point, skipFood int) bool {
	for _, s := range g.snakes {
		if s.Contains(p) {
			return true
		}
	}
	for j, f := range g.foods {
		if j != skipFood && f.Present() && f.Pos == p {
			return true
		}
	}
	return false
}

// foodAt returns the index of the food at p, or -1.
func (g *Game) foodAt(p core.Point) int {
	for i, f := range g.foods {
		if f.Present() && f.Pos == p {
			return i
		}
	}
	return -1
}
