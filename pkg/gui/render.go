package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	blockWidth  = 2 // Terminal columns per cell, so cells look square
	previewSize = 4
	sideWidth   = 18
	sideMargin  = 2
)

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// drawCell paints one matrix cell, blockWidth columns wide
func drawCell(s tcell.Screen, x, y int, b mino.Block, t Theme) {
	style := DefStyle.Background(t.BlockColor(b))
	for i := 0; i < blockWidth; i++ {
		drawRune(s, x+i, y, style, ' ')
	}
}

// drawBorder draws a box whose outer size is w x h
func drawBorder(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		drawRune(s, i, y, style, tcell.RuneHLine)
		drawRune(s, i, y+h-1, style, tcell.RuneHLine)
	}
	for j := y + 1; j < y+h-1; j++ {
		drawRune(s, x, j, style, tcell.RuneVLine)
		drawRune(s, x+w-1, j, style, tcell.RuneVLine)
	}
	drawRune(s, x, y, style, tcell.RuneULCorner)
	drawRune(s, x+w-1, y, style, tcell.RuneURCorner)
	drawRune(s, x, y+h-1, style, tcell.RuneLLCorner)
	drawRune(s, x+w-1, y+h-1, style, tcell.RuneLRCorner)
}

// boardSize is the outer size of the bordered matrix
func boardSize(m *mino.Matrix) (int, int) {
	return m.W*blockWidth + 2, m.H + 2
}

// drawMatrix draws m inside a border with its top-left corner at x,y
func drawMatrix(s tcell.Screen, x, y int, m *mino.Matrix, t Theme) {
	w, h := boardSize(m)
	drawBorder(s, x, y, w, h, DefStyle.Foreground(t.Border))

	for my := 0; my < m.H; my++ {
		for mx := 0; mx < m.W; mx++ {
			drawCell(s, x+1+mx*blockWidth, y+1+my, m.Block(mx, my), t)
		}
	}
}

// drawPreview draws shape centered in a previewSize x previewSize grid
func drawPreview(s tcell.Screen, x, y int, shape mino.Shape, t Theme) {
	offset := (previewSize - shape.Size()) / 2
	if offset < 0 {
		offset = 0
	}

	for py := 0; py < previewSize; py++ {
		for px := 0; px < previewSize; px++ {
			b := mino.BlockNone

			sy, sx := py-offset, px-offset
			if sy >= 0 && sy < shape.Size() && sx >= 0 && sx < len(shape[sy]) {
				b = shape[sy][sx]
			}

			drawCell(s, x+px*blockWidth, y+py, b, t)
		}
	}
}

// drawOverlay centers lines of text on the board
func drawOverlay(s tcell.Screen, x, y int, m *mino.Matrix, style tcell.Style, lines ...string) {
	w, h := boardSize(m)
	top := y + (h-len(lines))/2

	for i, line := range lines {
		left := x + (w-len([]rune(line)))/2
		drawText(s, left, top+i, style, line)
	}
}

// drawSide displays the score, level, line count and the next piece
func drawSide(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	labelStyle := DefStyle.Foreground(t.Label).Bold(true)

	drawText(s, x, y, labelStyle, "Score")
	drawText(s, x, y+1, DefStyle.Foreground(t.Score).Bold(true), fmt.Sprintf("%-*d", sideWidth, snap.Score))

	drawText(s, x, y+3, labelStyle, "Level")
	drawText(s, x, y+4, DefStyle.Foreground(t.Level), fmt.Sprintf("%-*d", sideWidth, snap.Level))

	drawText(s, x, y+6, labelStyle, "Lines")
	drawText(s, x, y+7, DefStyle.Foreground(t.Level), fmt.Sprintf("%-*d", sideWidth, snap.Lines))

	drawText(s, x, y+9, labelStyle, "Next")
	drawPreview(s, x, y+10, snap.Next, t)

	if snap.Name != "" {
		drawText(s, x, y+15, DefStyle.Foreground(t.Msg), snap.Name)
	}
}

// Render draws the whole game with its top-left corner at x,y
func Render(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	m := snap.Display()
	drawMatrix(s, x, y, m, t)

	w, _ := boardSize(m)
	drawSide(s, x+w+sideMargin, y, snap, t)

	switch {
	case !snap.Started():
		drawOverlay(s, x, y, m, DefStyle.Foreground(t.Label).Bold(true), "TETRIS", "", "Press Enter")
	case snap.GameOver:
		drawOverlay(s, x, y, m, DefStyle.Foreground(t.GameOver).Bold(true), "GAME OVER")
	case snap.Paused:
		drawOverlay(s, x, y, m, DefStyle.Foreground(t.Paused).Bold(true), "PAUSED")
	}
}

// RenderSize is the screen area Render needs for a matrix of w x h cells
func RenderSize(w, h int) (int, int) {
	return w*blockWidth + 2 + sideMargin + sideWidth, h + 2
}
