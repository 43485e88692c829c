package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Glyphs used when rasterizing a frame.
const (
	brickRune  = '█'
	paddleRune = '▀'
	ballRune   = '●'
)

// foregrounds maps core.Color to terminal colors.
var foregrounds = map[core.Color]lipgloss.Color{
	core.ColorWhite:  lipgloss.Color("#FFFFFF"),
	core.ColorOrange: lipgloss.Color("#F98100"),
	core.ColorGray:   lipgloss.Color("#8A8A8A"),
	core.ColorBlue:   lipgloss.Color("#1A80B6"),
}

// cellStyle returns the style for a cell drawn over background bg.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := foregrounds[bg]; ok {
		style = style.Background(c)
	}
	if c, ok := foregrounds[fg]; ok {
		style = style.Foreground(c)
	}
	return style
}

// cellSpan maps the logical span [lo, hi) of a size-wide playfield onto
// cells of a cells-wide grid. A non-empty span always covers a cell.
func cellSpan(lo, hi, size, cells int) (int, int) {
	if size <= 0 || cells <= 0 {
		return 0, 0
	}
	start := lo * cells / size
	end := (hi*cells + size - 1) / size
	if end <= start && hi > lo {
		end = start + 1
	}
	return core.Clamp(start, 0, cells), core.Clamp(end, 0, cells)
}

// cellRect converts a logical rect of frame f to screen cells.
func cellRect(r core.Rect, f breakout.Frame, s *core.Screen) core.Rect {
	x0, x1 := cellSpan(r.Left(), r.Right(), f.ScreenW, s.Width())
	y0, y1 := cellSpan(r.Top(), r.Bottom(), f.ScreenH, s.Height())
	return core.RectFromEdges(x0, y0, x1, y1)
}

// Rasterize draws f onto s, scaling from logical units to cells.
func Rasterize(f breakout.Frame, s *core.Screen) {
	s.Clear()

	for _, b := range f.Bricks {
		s.DrawRect(cellRect(b, f, s), brickRune, breakout.BrickColor)
	}
	s.DrawRect(cellRect(f.Paddle, f, s), paddleRune, breakout.PaddleColor)
	s.DrawRect(cellRect(f.Ball, f, s), ballRune, breakout.BallColor)

	s.DrawText(1, 0, f.HUD, breakout.HUDColor)
	if f.FPS > 0 {
		fps := fmt.Sprintf("%d fps", f.FPS)
		s.DrawText(s.Width()-len(fps)-1, 0, fps, core.ColorGray)
	}

	if f.Paused {
		msg := "PAUSED - press ←/→ or click to play"
		s.DrawText((s.Width()-len([]rune(msg)))/2, s.Height()/2, msg, breakout.HUDColor)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Every cell is painted over bg. Groups adjacent cells with the same color
// to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, bg core.Color) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Color]lipgloss.Style)
	styleFor := func(c core.Color) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = cellStyle(c, bg)
			styles[c] = st
		}
		return st
	}

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
