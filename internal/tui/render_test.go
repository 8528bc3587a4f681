package tui

import "testing"

func TestLineCells(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		count int
		width int
	}{
		{"empty", "", 0, 0},
		{"ascii", "abc", 3, 3},
		{"tab expands to stop", "\tx", 2, 5},
		{"tab after one char", "a\tb", 3, 5},
		{"wide rune", "日本", 2, 4},
		{"combining mark is one cell", "éx", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := lineCells(tt.line)
			if len(cells) != tt.count {
				t.Errorf("cell count = %d, want %d", len(cells), tt.count)
			}
			total := 0
			for _, c := range cells {
				total += c.width
			}
			if total != tt.width {
				t.Errorf("total width = %d, want %d", total, tt.width)
			}
		})
	}
}

func TestDisplayColumn(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		offset int
		col    int
	}{
		{"start", "abc", 0, 0},
		{"ascii interior", "abc", 2, 2},
		{"past tab", "\tx", 1, 4},
		{"after tab and char", "a\tb", 2, 4},
		{"after wide rune", "日x", 3, 2},
		{"offset past end clamps", "ab", 10, 2},
		{"negative offset", "ab", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayColumn(tt.line, tt.offset); got != tt.col {
				t.Errorf("displayColumn(%q, %d) = %d, want %d",
					tt.line, tt.offset, got, tt.col)
			}
		})
	}
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		name       string
		top        int
		cursorLine int
		rows       int
		want       int
	}{
		{"cursor visible keeps top", 5, 8, 10, 5},
		{"cursor above scrolls up", 5, 2, 10, 2},
		{"cursor below scrolls down", 0, 12, 10, 3},
		{"cursor on last row keeps top", 0, 9, 10, 0},
		{"zero rows is a no-op", 7, 0, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampScroll(tt.top, tt.cursorLine, tt.rows); got != tt.want {
				t.Errorf("clampScroll(%d, %d, %d) = %d, want %d",
					tt.top, tt.cursorLine, tt.rows, got, tt.want)
			}
		})
	}
}
