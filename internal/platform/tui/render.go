package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadeworks/gridsnake/internal/core"
	"github.com/arcadeworks/gridsnake/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// hudHeight is the number of screen rows above the arena border.
const hudHeight = 2

// DrawWorld renders the simulation state into a screen buffer: HUD line,
// arena border and one glyph per live entity. This is the screen-space
// conversion the simulation deliberately does not perform: sim y grows
// upward, screen y grows downward.
func DrawWorld(dst *core.Screen, w *sim.World) {
	dst.Clear()

	hud := fmt.Sprintf(" gridsnake | length: %d", w.Length())
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}

	arenaW, arenaH := w.ArenaWidth(), w.ArenaHeight()
	offX := (dst.Width() - (arenaW + 2)) / 2
	if offX < 0 {
		offX = 0
	}
	offY := hudHeight

	dst.DrawBox(offX, offY, arenaW+2, arenaH+2, core.ColorGray)

	for _, e := range w.Entities() {
		sx := offX + 1 + e.Pos.X
		sy := offY + 1 + (arenaH - 1 - e.Pos.Y)
		dst.SetCell(sx, sy, entityGlyph(e), entityColor(e.Kind))
	}
}

// entityGlyph picks a rune by role and size hint: the food sprite is larger
// than the body sprites, so it gets the wider glyph.
func entityGlyph(e sim.EntityView) rune {
	if e.Size >= 0.8 {
		return '●'
	}
	if e.Kind == sim.KindHead {
		return '█'
	}
	return '▓'
}

func entityColor(k sim.Kind) core.Color {
	switch k {
	case sim.KindHead:
		return core.ColorBrightGreen
	case sim.KindSegment:
		return core.ColorGreen
	default:
		return core.ColorBrightMagenta
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
