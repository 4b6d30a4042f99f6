package duel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/match"
)

const (
	snakeRune = '█'
	foodRune  = '▓'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(g.frame, core.ColorGray)

	for _, f := range g.foods {
		if f.Present() {
			g.fillCell(dst, f.Pos, foodRune, f.Color)
		}
	}
	for _, s := range g.snakes {
		for _, seg := range s.body {
			g.fillCell(dst, seg, snakeRune, s.Color)
		}
	}

	switch {
	case g.roundOver:
		g.renderOverlay(dst, g.roundOverLines()...)
	case g.paused:
		g.renderOverlay(dst, "Paused", keyHint(g.cfg.Controls.Pause, "continue"))
	}
}

// fillCell paints one grid cell as a flat block cellW columns wide.
func (g *Game) fillCell(dst *core.Screen, p core.Point, r rune, c core.Color) {
	sx := g.offsetX + p.X*g.cellW
	sy := g.offsetY + p.Y
	dst.DrawRect(core.NewRect(sx, sy, g.cellW, 1), r, c)
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += utf8.RuneCountInString(text)
	}

	put(g.Title(), core.ColorBrightWhite)
	if g.mode == match.ModeSolo {
		if len(g.snakes) > 0 {
			put(fmt.Sprintf("  Length: %d", g.snakes[0].Len()), core.ColorDefault)
		}
		put(fmt.Sprintf("  Best: %d", g.tally.Best()), core.ColorGray)
		return
	}

	for _, s := range g.snakes {
		put("  ", core.ColorDefault)
		put(fmt.Sprintf("%s %d", s.Name, s.Len()), s.Color)
	}
	put(fmt.Sprintf("  Wins %d:%d", g.tally.Wins(core.Player1), g.tally.Wins(core.Player2)), core.ColorDefault)
	if d := g.tally.Draws(); d > 0 {
		put(fmt.Sprintf("  Draws %d", d), core.ColorGray)
	}
}

func (g *Game) roundOverLines() []string {
	o := g.outcome
	if g.mode == match.ModeSolo || len(g.snakes) < 2 {
		return []string{
			fmt.Sprintf("You Lost! Length: %d", o.Best()),
			causeText(o.Causes[0]),
			keyHint(g.cfg.Controls.Restart, "play again"),
		}
	}

	title := "Draw!"
	if !o.Draw {
		title = g.snakes[o.Winner.Index()].Name + " wins!"
	}
	var detail string
	for i, c := range o.Causes {
		if c != match.CauseNone {
			detail = g.snakes[i].Name + " " + causeText(c)
			break
		}
	}
	return []string{
		title,
		detail,
		fmt.Sprintf("Lengths %d : %d", o.Lengths[0], o.Lengths[1]),
		keyHint(g.cfg.Controls.Restart, "play again"),
	}
}

// keyHint names the configured keys for an action, e.g. "Press p/esc to continue".
func keyHint(keys []string, action string) string {
	if len(keys) == 0 {
		return ""
	}
	return fmt.Sprintf("Press %s to %s", strings.Join(keys, "/"), action)
}

func causeText(c match.DeathCause) string {
	switch c {
	case match.CauseWall:
		return "hit the wall"
	case match.CauseSelf:
		return "bit itself"
	case match.CauseSnake:
		return "ran into the other snake"
	case match.CauseHeadToHead:
		return "collided head-on"
	default:
		return ""
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
