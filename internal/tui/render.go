// Board rendering.
//
// Responsibilities:
//   - Paint the six-row board as 5x3 character cells with the theme's
//     colors, highlighting the active row and the edit cursor.
//   - Draw the advisory message area beneath the board, wrapped to the
//     board width.
//   - Fall back to a "terminal too small" notice when the board does
//     not fit.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mpatters/wordgrid/internal/board"
)

// Character cell footprint of a single letter and of the whole board.
// The board reserves two extra lines beneath the grid for messages.
const (
	cellW = 5
	cellH = 3

	BoardW = cellW * board.Cols
	BoardH = cellH*board.Rows + 2
)

// Renderer paints frames into a writer.
type Renderer struct {
	out   io.Writer
	theme Theme
}

// NewRenderer creates a Renderer writing to out with the given theme.
func NewRenderer(out io.Writer, theme Theme) *Renderer {
	return &Renderer{out: out, theme: theme}
}

// Frame draws a complete frame for a terminal of the given size.
func (rd *Renderer) Frame(g *board.Game, width, height int) {
	fmt.Fprint(rd.out, rd.theme.GameBg.Bg()+ClearScreen)

	if width < BoardW || height < BoardH {
		rd.drawTooSmall(width, height)
		return
	}

	x, y := centeredTopLeft(width, height, BoardW, BoardH)
	for i := 0; i < board.Rows; i++ {
		rd.drawRow(g.Row(i), x, y+i*cellH, i == g.ActiveRow() && g.Outcome() == board.Playing)
	}
	rd.drawMessage(g.Message(), x, y+BoardH-2)
}

func (rd *Renderer) drawRow(r *board.Row, x, y int, active bool) {
	cells := r.Cells()
	for i := range cells {
		rd.drawCell(cells[i], x+i*cellW, y, active, active && r.Cursor() == i)
	}
}

func (rd *Renderer) drawCell(c board.Cell, x, y int, rowActive, cellActive bool) {
	base := rd.theme.CellBase
	if rowActive {
		base = rd.theme.CellRowActive
		if cellActive {
			base = rd.theme.CellActive
		}
	}

	text, cell := rd.theme.TextBase, base
	switch c.State {
	case board.CellPresent:
		text, cell = rd.theme.TextInverted, rd.theme.CellPresent
	case board.CellCorrect:
		text, cell = rd.theme.TextInverted, rd.theme.CellCorrect
	}

	bg := rd.theme.GameBg
	fmt.Fprintf(rd.out, "%s%s%s ▄▄▄ %s █%s%s%c%s%s█ %s ▀▀▀ ",
		CursorTo(y, x), bg.Bg(), cell.Fg(),
		CursorTo(y+1, x), cell.Bg(), text.Fg(), c.Rune(), bg.Bg(), cell.Fg(),
		CursorTo(y+2, x),
	)
}

func (rd *Renderer) drawMessage(msg string, x, y int) {
	if msg == "" {
		return
	}
	lines := wrapText(msg, BoardW)
	for i := 0; i < 2 && i < len(lines); i++ {
		fmt.Fprintf(rd.out, "%s%s%s%s",
			CursorTo(y+i, x), rd.theme.GameBg.Bg(), rd.theme.TextBase.Fg(), lines[i])
	}
}

func (rd *Renderer) drawTooSmall(width, height int) {
	msg := fmt.Sprintf("[%dx%d] is too small! Please make your terminal window bigger.",
		width, height)
	lines := wrapText(msg, width)
	maxw := 0
	for _, l := range lines {
		if len(l) > maxw {
			maxw = len(l)
		}
	}
	x, y := centeredTopLeft(width, height, maxw, len(lines))
	for i, l := range lines {
		fmt.Fprintf(rd.out, "%s%s%s%s",
			CursorTo(y+i, x), rd.theme.GameBg.Bg(), rd.theme.TextBase.Fg(), l)
	}
}

// centeredTopLeft returns the 1-indexed top-left corner of an inner
// rectangle centered in an outer one. A dimension that does not fit
// pins to 1.
func centeredTopLeft(outerW, outerH, innerW, innerH int) (x, y int) {
	x, y = 1, 1
	if innerW < outerW {
		x = 1 + (outerW-innerW)/2
	}
	if innerH < outerH {
		y = 1 + (outerH-innerH)/2
	}
	return x, y
}

// wrapText splits text on newlines, then greedily wraps each line to
// width columns on word boundaries.
func wrapText(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) <= width {
				line += " " + w
			} else {
				out = append(out, line)
				line = w
			}
		}
		out = append(out, line)
	}
	return out
}
