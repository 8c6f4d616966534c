package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/games/brickduel"
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
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorPurple:        lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// Smallest terminal the arena can be drawn in.
const (
	minArenaW = 24
	minArenaH = 10
)

// Player colors, indexed by PlayerID.Index().
var playerColors = [2]core.Color{core.ColorBrightCyan, core.ColorBrightMagenta}

// viewport maps arena pixels onto the cells inside the arena border.
type viewport struct {
	ox, oy int     // Top-left inner cell
	w, h   int     // Inner size in cells
	sx, sy float64 // Cells per pixel
}

func newViewport(box core.Rect, arenaW, arenaH float64) viewport {
	v := viewport{ox: box.X + 1, oy: box.Y + 1, w: box.W - 2, h: box.H - 2}
	v.sx = float64(v.w) / arenaW
	v.sy = float64(v.h) / arenaH
	return v
}

func (v viewport) col(x float64) int {
	return v.ox + core.Clamp(int(math.Floor(x*v.sx)), 0, v.w-1)
}

func (v viewport) row(y float64) int {
	return v.oy + core.Clamp(int(math.Floor(y*v.sy)), 0, v.h-1)
}

// rect returns the cells covered by r, at least one cell in each direction.
func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.col(r.Left()), v.row(r.Top())
	x1 := max(v.col(r.Right()-1e-9), x0)
	y1 := max(v.row(r.Bottom()-1e-9), y0)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// DrawSnapshot draws the HUD on the first row and the arena below it,
// scaled to fill the screen.
func DrawSnapshot(s *core.Screen, snap brickduel.Snapshot) {
	s.Clear()
	if s.Width() < minArenaW || s.Height() < minArenaH {
		s.DrawTextCentered(s.Height()/2, "terminal too small", core.ColorRed)
		return
	}

	drawHUD(s, snap)

	box := core.NewRect(0, 1, s.Width(), s.Height()-1)
	s.DrawBox(box, core.ColorGray)
	v := newViewport(box, snap.Width, snap.Height)

	s.DrawVLine(v.col(snap.Mid), v.oy, v.h, '┊', core.ColorGray)

	for _, br := range snap.Bricks {
		fill := '█'
		if br.HitsLeft > 1 {
			fill = '▓'
		}
		s.DrawRect(v.rect(br.Rect), fill, br.Color)
	}

	for _, p := range snap.PowerUps {
		s.SetColor(v.col(p.Pos.X), v.row(p.Pos.Y), p.Type.Glyph(), p.Type.Color())
	}

	for _, l := range snap.Lasers {
		s.DrawRect(v.rect(l), '╵', core.ColorBrightRed)
	}

	for i, p := range snap.Players {
		fill, c := '▀', playerColors[i]
		switch {
		case p.LaserActive:
			fill = '╦'
		case p.Sticky:
			fill = '▄'
		}
		s.DrawRect(v.rect(p.Paddle), fill, c)
	}

	for _, b := range snap.Balls {
		s.SetColor(v.col(b.Pos.X), v.row(b.Pos.Y), '●', core.ColorBrightWhite)
	}

	if snap.Paused {
		mid := v.oy + v.h/2
		s.DrawTextCentered(mid, " PAUSED ", core.ColorBrightYellow)
		s.DrawTextCentered(mid+1, " esc resume · m menu ", core.ColorGray)
	}
}

func drawHUD(s *core.Screen, snap brickduel.Snapshot) {
	for i, p := range snap.Players {
		text := fmt.Sprintf("%s %s %d", p.ID, lives(p.Lives), p.Score)
		x := 1
		if i == 1 {
			x = s.Width() - 1 - len([]rune(text))
		}
		s.DrawTextColor(x, 0, text, playerColors[i])
	}
	s.DrawTextCentered(0, fmt.Sprintf("Layout %d · %s", snap.Layout, snap.LayoutName), core.ColorWhite)
}

func lives(n int) string {
	if n <= 0 {
		return "-"
	}
	return strings.Repeat("♥", n)
}
