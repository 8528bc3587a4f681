package tui

import (
	"strings"

	"github.com/rivo/uniseg"
)

const tabWidth = 4

// cell is one terminal column group: a grapheme cluster and the number
// of columns it occupies.
type cell struct {
	str   string
	width int
}

// lineCells splits a line into renderable cells. Tabs expand to the next
// tab stop; the caller passes the column the line starts at (normally 0).
func lineCells(line string) []cell {
	cells := make([]cell, 0, len(line))
	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		s := g.Str()
		if s == "\t" {
			w := tabWidth - col%tabWidth
			cells = append(cells, cell{str: strings.Repeat(" ", w), width: w})
			col += w
			continue
		}
		w := g.Width()
		if w < 1 {
			// Zero-width clusters still need a column to be visible.
			w = 1
		}
		cells = append(cells, cell{str: s, width: w})
		col += w
	}
	return cells
}

// displayColumn converts a byte offset within a line to a terminal
// column, accounting for tab stops and wide graphemes.
func displayColumn(line string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	col := 0
	consumed := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		if consumed >= byteOffset {
			break
		}
		s := g.Str()
		if s == "\t" {
			col += tabWidth - col%tabWidth
		} else if w := g.Width(); w > 0 {
			col += w
		} else {
			col++
		}
		consumed += len(s)
	}
	return col
}

// clampScroll adjusts the first visible line so the cursor line stays on
// screen. rows is the number of content rows available.
func clampScroll(top, cursorLine, rows int) int {
	if rows < 1 {
		return top
	}
	if cursorLine < top {
		return cursorLine
	}
	if cursorLine >= top+rows {
		return cursorLine - rows + 1
	}
	return top
}
