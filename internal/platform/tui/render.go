package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// ansiColors maps core.Color to 256-color terminal codes.
// ColorDefault has no entry and uses the terminal's own color.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorWhite:     lipgloss.Color("15"),
	core.ColorBlack:     lipgloss.Color("16"),
	core.ColorRed:       lipgloss.Color("196"),
	core.ColorGreen:     lipgloss.Color("34"),
	core.ColorYellow:    lipgloss.Color("226"),
	core.ColorBlue:      lipgloss.Color("27"),
	core.ColorSkyBlue:   lipgloss.Color("117"),
	core.ColorLightGray: lipgloss.Color("252"),
	core.ColorGray:      lipgloss.Color("245"),
	core.ColorBrown:     lipgloss.Color("130"),
	core.ColorOrange:    lipgloss.Color("208"),
}

const numColors = int(core.ColorOrange) + 1

// styles holds one lipgloss style per foreground/background pair. It is
// built once and only read afterwards, so ssh sessions can share it.
var styles [numColors][numColors]lipgloss.Style

func init() {
	for fg := range numColors {
		for bg := range numColors {
			st := lipgloss.NewStyle()
			if c, ok := ansiColors[core.Color(fg)]; ok {
				st = st.Foreground(c)
			}
			if c, ok := ansiColors[core.Color(bg)]; ok {
				st = st.Background(c)
			}
			styles[fg][bg] = st
		}
	}
}

func styleFor(fg, bg core.Color) lipgloss.Style {
	if int(fg) >= numColors || int(bg) >= numColors {
		return styles[core.ColorDefault][core.ColorDefault]
	}
	return styles[fg][bg]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
