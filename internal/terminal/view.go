package terminal

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"playermove/internal/controller"
	"playermove/internal/geom"
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	activeStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	statusStyle = tcell.StyleDefault
)

// View maps world coordinates inside Extents onto a Width x Height grid.
// World y grows upward, rows grow downward.
type View struct {
	Extents geom.Vec2
	Width   int
	Height  int
}

// Cell returns the grid cell of p. Points outside the extents land on the
// nearest edge cell.
func (v View) Cell(p geom.Vec2) (col, row int) {
	col = project(p.X, v.Extents.X, v.Width)
	row = v.Height - 1 - project(p.Y, v.Extents.Y, v.Height)
	return col, row
}

func project(x, ext float64, cells int) int {
	if cells <= 1 {
		return 0
	}
	if ext <= 0 {
		return (cells - 1) / 2
	}
	t := (geom.Clamp(x, -ext, ext) + ext) / (2 * ext)
	return int(math.Round(t * float64(cells-1)))
}

// arena returns the extents covering every player so they share one frame.
func arena(players []controller.PlayerState) geom.Vec2 {
	var ext geom.Vec2
	for _, p := range players {
		ext.X = math.Max(ext.X, p.Extents.X)
		ext.Y = math.Max(ext.Y, p.Extents.Y)
	}
	return ext
}

// Draw renders a bordered arena, one glyph per player and a status line.
// The active player is highlighted. It needs at least a 3x4 screen.
func Draw(screen tcell.Screen, players []controller.PlayerState, active string, tick int64) {
	screen.Clear()
	w, h := screen.Size()
	if w < 3 || h < 4 {
		return
	}

	// Row 0 is the status line; the border takes one cell on each side.
	view := View{Extents: arena(players), Width: w - 2, Height: h - 3}
	drawBorder(screen, 0, 1, w-1, h-1)

	for _, p := range players {
		col, row := view.Cell(p.Position)
		style := playerStyle
		if p.Name == active {
			style = activeStyle
		}
		screen.SetContent(col+1, row+2, glyph(p.Name), nil, style)
	}

	status := fmt.Sprintf("tick %d", tick)
	for _, p := range players {
		if p.Name == active {
			status = fmt.Sprintf("tick %d  %s %v  input %v  [arrows/wasd move, space stop, q quit]",
				tick, p.Name, p.Position, p.Input)
		}
	}
	drawText(screen, 0, 0, w, status)
}

func glyph(name string) rune {
	if name == "" {
		return '@'
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r
}

func drawBorder(screen tcell.Screen, x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, y1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(x1, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(x1, y0, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, borderStyle)
}

func drawText(screen tcell.Screen, x, y, maxWidth int, text string) {
	for _, r := range text {
		if x >= maxWidth {
			return
		}
		screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
}
