// Package view draws rendered grids onto a tcell screen and runs the
// interactive viewer loop.
package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"landscape/internal/render"
)

// Draw paints a grid onto the screen. Grid row 0 is the bottom of the
// scene, so rows are flipped: the last grid row lands on screen row 0.
func Draw(screen tcell.Screen, grid render.Grid) {
	rows := len(grid)
	for y, row := range grid {
		sy := rows - 1 - y
		for x, c := range row {
			style := tcell.StyleDefault.
				Foreground(c.FG.Tcell()).
				Background(c.BG.Tcell())
			putGlyph(screen, x, sy, c.Ch, style)
		}
	}
}

// putGlyph draws one rune at screen position (x, y).
func putGlyph(screen tcell.Screen, x, y int, ch rune, style tcell.Style) {
	screen.SetContent(x, y, ch, nil, style)
	if runewidth.RuneWidth(ch) == 2 {
		// Fill the second column to avoid rendering artifacts.
		screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawStatus writes one line of text on the given screen row, clearing the
// rest of the row.
func drawStatus(screen tcell.Screen, row int, text string) {
	w, _ := screen.Size()
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack)
	for x := 0; x < w; x++ {
		screen.SetContent(x, row, ' ', nil, style)
	}
	x := 0
	for _, ch := range text {
		if x >= w {
			break
		}
		putGlyph(screen, x, row, ch, style)
		x += runewidth.RuneWidth(ch)
	}
}
