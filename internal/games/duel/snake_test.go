package duel

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
)

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
		if sum := d.Delta().Add(want.Delta()); sum != core.Pt(0, 0) {
			t.Errorf("%v and its opposite should cancel out, got %v", d, sum)
		}
	}
}

func TestDirectionOfConfigNames(t *testing.T) {
	cases := map[string]Direction{
		"up":     DirUp,
		"Down":   DirDown,
		" left ": DirLeft,
		"RIGHT":  DirRight,
		"north":  DirRight,
		"":       DirRight,
	}
	for name, want := range cases {
		dx, dy, _ := config.DirectionDelta(name)
		if got := directionOf(dx, dy); got != want {
			t.Errorf("direction for %q = %v, expected %v", name, got, want)
		}
	}
}

func TestNewSnakeTrailsBehindHead(t *testing.T) {
	bounds := core.NewRect(0, 0, 10, 10)
	none := func(core.Point) bool { return false }

	s := newSnake("s", core.ColorGreen, core.Pt(5, 5), DirRight, 3, bounds, none)
	want := []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	if !reflect.DeepEqual(s.Body(), want) {
		t.Errorf("body = %v, expected %v", s.Body(), want)
	}
}

func TestNewSnakeClipsAtEdgesAndBlockedCells(t *testing.T) {
	bounds := core.NewRect(0, 0, 10, 10)

	s := newSnake("s", core.ColorGreen, core.Pt(1, 0), DirRight, 5, bounds, func(core.Point) bool { return false })
	if s.Len() != 2 {
		t.Errorf("len = %d, expected the body cut at the left wall", s.Len())
	}

	blocked := func(p core.Point) bool { return p == core.Pt(5, 7) }
	s = newSnake("s", core.ColorGreen, core.Pt(5, 5), DirUp, 5, bounds, blocked)
	if s.Len() != 2 {
		t.Errorf("len = %d, expected the body cut at the blocked cell", s.Len())
	}
}

func TestSnakeAdvance(t *testing.T) {
	s := &Snake{body: []core.Point{{X: 2, Y: 2}, {X: 1, Y: 2}}, dir: DirRight}

	s.advance(s.next(), false)
	if !reflect.DeepEqual(s.Body(), []core.Point{{X: 3, Y: 2}, {X: 2, Y: 2}}) {
		t.Errorf("plain move body = %v", s.Body())
	}

	s.advance(s.next(), true)
	if !reflect.DeepEqual(s.Body(), []core.Point{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}) {
		t.Errorf("growing move body = %v", s.Body())
	}
	if !s.JustAte() || s.Eaten() != 1 {
		t.Error("growing move should set the just-ate flag")
	}
}
