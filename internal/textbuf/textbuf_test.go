package textbuf

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.CursorPosition() != 0 {
		t.Errorf("cursor = %d, want 0", b.CursorPosition())
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
}

func TestFromString(t *testing.T) {
	b := FromString("hello\nworld")
	if got := b.String(); got != "hello\nworld" {
		t.Errorf("String() = %q", got)
	}
	if b.Len() != 11 {
		t.Errorf("Len() = %d, want 11", b.Len())
	}
}

func TestFromReader(t *testing.T) {
	b, err := FromReader(strings.NewReader("from a reader"))
	if err != nil {
		t.Fatalf("FromReader() error: %v", err)
	}
	if got := b.String(); got != "from a reader" {
		t.Errorf("String() = %q", got)
	}
}

func TestInsertTextAtCursor(t *testing.T) {
	// Empty buffer, insert at cursor 0.
	b := New()
	b.InsertAtCursor("hello")
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
	if b.CursorPosition() != 5 {
		t.Errorf("cursor = %d, want 5", b.CursorPosition())
	}
	if got := b.Line(0); got != "hello" {
		t.Errorf("Line(0) = %q, want %q", got, "hello")
	}
}

func TestInsertTextCursorAdjustment(t *testing.T) {
	tests := []struct {
		name       string
		cursor     int
		pos        int
		text       string
		wantCursor int
	}{
		{"insert before cursor shifts it", 5, 2, "xx", 7},
		{"insert at cursor shifts it", 5, 5, "xx", 7},
		{"insert after cursor leaves it", 5, 6, "xx", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString("0123456789")
			b.SetCursorPosition(tt.cursor)
			b.InsertText(tt.pos, tt.text)
			if got := b.CursorPosition(); got != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", got, tt.wantCursor)
			}
		})
	}
}

func TestDeleteText(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		pos      int
		count    int
		expected string
	}{
		{"from start", "hello world", 0, 6, "world"},
		{"from middle", "hello world", 5, 1, "helloworld"},
		{"count clamped to end", "hello", 3, 100, "hel"},
		{"pos past end is a no-op", "hello", 10, 2, "hello"},
		{"zero count is a no-op", "hello", 2, 0, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.initial)
			b.DeleteText(tt.pos, tt.count)
			if got := b.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDeleteTextCursorAdjustment(t *testing.T) {
	tests := []struct {
		name       string
		cursor     int
		pos        int
		count      int
		wantCursor int
	}{
		{"cursor after range shifts left", 8, 2, 3, 5},
		{"cursor inside range clamps to pos", 4, 2, 5, 2},
		{"cursor at range start is untouched", 2, 2, 3, 2},
		{"cursor before range is untouched", 1, 4, 3, 1},
		{"cursor at range end shifts left", 5, 2, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString("0123456789")
			b.SetCursorPosition(tt.cursor)
			b.DeleteText(tt.pos, tt.count)
			if got := b.CursorPosition(); got != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", got, tt.wantCursor)
			}
		})
	}
}

func TestReplaceText(t *testing.T) {
	b := FromString("hello world")
	b.ReplaceText(6, 5, "universe")
	if got := b.String(); got != "hello universe" {
		t.Errorf("got %q, want %q", got, "hello universe")
	}

	// Zero count behaves as a pure insert.
	b = FromString("ab")
	b.ReplaceText(1, 0, "-")
	if got := b.String(); got != "a-b" {
		t.Errorf("got %q, want %q", got, "a-b")
	}
}

func TestSetCursorPositionClamps(t *testing.T) {
	b := FromString("abc")
	b.SetCursorPosition(100)
	if got := b.CursorPosition(); got != 3 {
		t.Errorf("cursor = %d, want 3", got)
	}
	b.SetCursorPosition(-5)
	if got := b.CursorPosition(); got != 0 {
		t.Errorf("cursor = %d, want 0", got)
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		count int
	}{
		{"empty", "", 1},
		{"single line", "hello", 1},
		{"two lines", "ab\ncd", 2},
		{"trailing newline does not add a line", "ab\ncd\n", 2},
		{"only a newline", "\n", 1},
		{"blank interior line", "a\n\nb", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.text)
			if got := b.LineCount(); got != tt.count {
				t.Errorf("LineCount() = %d, want %d", got, tt.count)
			}
		})
	}
}

func TestLine(t *testing.T) {
	b := FromString("ab\ncd\n")
	if got := b.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
	if got := b.Line(0); got != "ab" {
		t.Errorf("Line(0) = %q, want %q", got, "ab")
	}
	if got := b.Line(1); got != "cd" {
		t.Errorf("Line(1) = %q, want %q", got, "cd")
	}
	if got := b.Line(2); got != "" {
		t.Errorf("Line(2) = %q, want empty", got)
	}
	if got := b.Line(-1); got != "" {
		t.Errorf("Line(-1) = %q, want empty", got)
	}
}

func TestLineLength(t *testing.T) {
	b := FromString("ab\nlonger line\nx")
	wants := []int{2, 11, 1}
	for i, want := range wants {
		if got := b.LineLength(i); got != want {
			t.Errorf("LineLength(%d) = %d, want %d", i, got, want)
		}
	}
	if got := b.LineLength(3); got != 0 {
		t.Errorf("LineLength(3) = %d, want 0", got)
	}
}

func TestCursorLineColumn(t *testing.T) {
	b := FromString("ab\ncd\nef")

	tests := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{6, 2, 0},
		{8, 2, 2},
	}

	for _, tt := range tests {
		b.SetCursorPosition(tt.offset)
		pos := b.CursorLineColumn()
		if pos.Line != tt.line || pos.Column != tt.col || pos.Offset != tt.offset {
			t.Errorf("offset %d: got %v, want (%d:%d @%d)",
				tt.offset, pos, tt.line, tt.col, tt.offset)
		}
	}
}

func TestSetCursorLineColumn(t *testing.T) {
	b := FromString("ab\ncd\nef")

	tests := []struct {
		name   string
		line   int
		col    int
		offset int
	}{
		{"line start", 1, 0, 3},
		{"line interior", 1, 1, 4},
		{"column clamps to line end", 0, 99, 2},
		{"line past end clamps to buffer end", 99, 0, 8},
		{"last line", 2, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.SetCursorLineColumn(tt.line, tt.col)
			if got := b.CursorPosition(); got != tt.offset {
				t.Errorf("cursor = %d, want %d", got, tt.offset)
			}
		})
	}
}

func TestLineCacheInvalidation(t *testing.T) {
	b := FromString("ab\ncd")
	if got := b.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
	b.InsertText(2, "\nxx")
	if got := b.LineCount(); got != 3 {
		t.Errorf("LineCount() after insert = %d, want 3", got)
	}
	b.DeleteText(2, 3)
	if got := b.LineCount(); got != 2 {
		t.Errorf("LineCount() after delete = %d, want 2", got)
	}
}

func TestTextRangeAndSelection(t *testing.T) {
	b := FromString("hello world")

	if got := b.TextRange(6, 11); got != "world" {
		t.Errorf("TextRange(6, 11) = %q", got)
	}
	if got := b.Selection(0, 5); got != "hello" {
		t.Errorf("Selection(0, 5) = %q", got)
	}
	if got := b.Selection(5, 5); got != "" {
		t.Errorf("Selection(5, 5) = %q, want empty", got)
	}
	if got := b.Selection(20, 25); got != "" {
		t.Errorf("Selection(20, 25) = %q, want empty", got)
	}
	if got := b.Selection(3, 100); got != "" {
		t.Errorf("Selection(3, 100) = %q, want empty", got)
	}
}

func TestByteAt(t *testing.T) {
	b := FromString("abc")
	if v, ok := b.ByteAt(1); !ok || v != 'b' {
		t.Errorf("ByteAt(1) = %q, %v", v, ok)
	}
	if _, ok := b.ByteAt(3); ok {
		t.Error("ByteAt(3) should report false")
	}
}

func TestVersionBumpsOnMutation(t *testing.T) {
	b := FromString("abc")
	v := b.Version()
	b.InsertText(0, "x")
	if b.Version() == v {
		t.Error("InsertText should bump the version")
	}
	v = b.Version()
	b.SetCursorPosition(2) // cursor motion is not a content mutation
	if b.Version() != v {
		t.Error("SetCursorPosition should not bump the version")
	}
	b.DeleteText(0, 1)
	if b.Version() == v {
		t.Error("DeleteText should bump the version")
	}
}

func TestStats(t *testing.T) {
	b := FromString("one\ntwo")
	s := b.Stats()
	if s.Size != 7 {
		t.Errorf("Size = %d, want 7", s.Size)
	}
	if s.LineCount != 2 {
		t.Errorf("LineCount = %d, want 2", s.LineCount)
	}
	if s.Capacity < s.Size {
		t.Errorf("Capacity %d < Size %d", s.Capacity, s.Size)
	}
	if s.GapSize != s.Capacity-s.Size {
		t.Errorf("GapSize = %d, want %d", s.GapSize, s.Capacity-s.Size)
	}
}
