package duel

import (
	"github.com/vovakirdan/duosnake/internal/core"
)

// Direction represents a snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the one-cell step for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	default:
		return core.Pt(1, 0)
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionOf returns the direction whose step is (dx, dy).
// Anything else reads as DirRight.
func directionOf(dx, dy int) Direction {
	for _, d := range []Direction{DirUp, DirDown, DirLeft} {
		if d.Delta() == core.Pt(dx, dy) {
			return d
		}
	}
	return DirRight
}

// DirectionFor maps a directional action to a Direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// Snake is one player's snake.
type Snake struct {
	Name  string
	Color core.Color

	body    []core.Point // Head at index 0
	dir     Direction
	justAte bool // Ate matching food on the last move; the tail was kept
	turned  bool // A direction key was accepted since the last move
	eaten   int
}

// newSnake lays out a snake with its head at head and the body trailing
// behind it. Cells that would fall outside bounds or onto blocked cells are
// dropped, so the snake may start shorter than length.
func newSnake(name string, color core.Color, head core.Point, dir Direction, length int, bounds core.Rect, blocked func(core.Point) bool) *Snake {
	s := &Snake{Name: name, Color: color, dir: dir}
	back := dir.Opposite().Delta()
	p := head
	for i := 0; i < length; i++ {
		if !bounds.Contains(p) || (i > 0 && blocked(p)) {
			break
		}
		s.body = append(s.body, p)
		p = p.Add(back)
	}
	return s
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the snake's cells, head first.
func (s *Snake) Body() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Len returns the number of cells the snake occupies.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// JustAte reports whether the snake grew on the last move.
func (s *Snake) JustAte() bool {
	return s.justAte
}

// Eaten returns how many foods the snake has eaten this round.
func (s *Snake) Eaten() int {
	return s.eaten
}

// Contains reports whether the snake occupies p.
func (s *Snake) Contains(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Steer requests a new heading. Only the first request between two moves is
// considered; it is rejected if it would reverse the snake onto itself.
// The guard is consumed either way.
func (s *Snake) Steer(d Direction) bool {
	if s.turned {
		return false
	}
	s.turned = true
	if d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// next returns the cell the head moves into on the next tick.
func (s *Snake) next() core.Point {
	return s.Head().Add(s.dir.Delta())
}

// occupiesAfterMove reports whether p is covered by the snake's current
// cells once it moves. The tail is vacated unless the snake grows.
func (s *Snake) occupiesAfterMove(p core.Point, grows bool) bool {
	n := len(s.body)
	if !grows {
		n--
	}
	for i := 0; i < n; i++ {
		if s.body[i] == p {
			return true
		}
	}
	return false
}

// advance prepends head and drops the tail unless the snake grows.
func (s *Snake) advance(head core.Point, grows bool) {
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	if !grows {
		s.body = s.body[:len(s.body)-1]
	} else {
		s.eaten++
	}
	s.justAte = grows
	s.turned = false
}
