package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duosnake/internal/core"
)

// colorStyles holds one lipgloss style per core.Color, indexed by the color.
var colorStyles = buildStyles()

func buildStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, core.ColorGray+1)
	for c := range styles {
		style := lipgloss.NewStyle()
		if code := ansiCode(core.Color(c)); code >= 0 {
			style = style.Foreground(lipgloss.Color(strconv.Itoa(code)))
		}
		styles[c] = style
	}
	return styles
}

// ansiCode returns the 256-color palette index for c, or -1 for the terminal default.
func ansiCode(c core.Color) int {
	switch {
	case c >= core.ColorRed && c <= core.ColorWhite:
		return int(c-core.ColorRed) + 1
	case c >= core.ColorBrightRed && c <= core.ColorBrightWhite:
		return int(c-core.ColorBrightRed) + 9
	case c == core.ColorOrange:
		return 208
	case c == core.ColorGray:
		return 245
	default:
		return -1
	}
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
