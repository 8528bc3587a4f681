package textbuf

import (
	"fmt"
	"io"
	"sort"

	"github.com/ewagner/quill/internal/gapbuf"
)

// Position is a cursor location expressed both ways: as a line/column
// pair and as the absolute byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d @%d)", p.Line, p.Column, p.Offset)
}

// TextBuffer presents a byte gap buffer as an editable document: a single
// cursor, line/column addressing, search and replace, line-ending
// handling, and byte-exact file I/O.
//
// TextBuffer is not safe for concurrent use.
type TextBuffer struct {
	gb     gapbuf.Buffer[byte]
	cursor int

	// lineStarts holds the offset of the first byte of each line. Entry 0
	// is always 0; a trailing newline does not open a new line. Valid
	// only while cacheValid is set; every content mutation clears the
	// flag and the next line query rebuilds the cache with a full scan.
	lineStarts []int
	cacheValid bool

	defaultEOL LineEnding
	version    uint64
}

// New creates an empty text buffer.
func New(opts ...Option) *TextBuffer {
	t := &TextBuffer{defaultEOL: LineEndingLF}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromString creates a text buffer with initial content. The cursor
// starts at 0.
func FromString(s string, opts ...Option) *TextBuffer {
	t := New(opts...)
	t.gb.AssignSlice([]byte(s))
	return t
}

// FromReader creates a text buffer from an io.Reader.
func FromReader(r io.Reader, opts ...Option) (*TextBuffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	t := New(opts...)
	t.gb.AssignSlice(data)
	return t, nil
}

// contentChanged records a mutation: bumps the version and invalidates
// the line cache.
func (t *TextBuffer) contentChanged() {
	t.cacheValid = false
	t.version++
}

// Read access

// Len returns the buffer length in bytes.
func (t *TextBuffer) Len() int {
	return t.gb.Len()
}

// IsEmpty returns true if the buffer holds no text.
func (t *TextBuffer) IsEmpty() bool {
	return t.gb.IsEmpty()
}

// String returns the full content as a string: a materialized snapshot
// with the gap flattened away. Use sparingly for large buffers.
func (t *TextBuffer) String() string {
	return string(t.gb.Elems())
}

// Bytes returns a freshly allocated copy of the full content.
func (t *TextBuffer) Bytes() []byte {
	return t.gb.Elems()
}

// TextRange returns the text in the byte range [start, end), clamped to
// the buffer.
func (t *TextBuffer) TextRange(start, end int) string {
	return string(t.gb.Slice(start, end))
}

// ByteAt returns the byte at the given offset. Returns false if the
// offset is out of range.
func (t *TextBuffer) ByteAt(offset int) (byte, bool) {
	v, err := t.gb.At(offset)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Selection returns the text in [start, end), or "" for an invalid or
// empty range. This is a stateless range query; the buffer keeps no
// selection state.
func (t *TextBuffer) Selection(start, end int) string {
	if start < 0 || start >= t.Len() || end > t.Len() || start >= end {
		return ""
	}
	return t.TextRange(start, end)
}

// Version returns a sequence number that increases with every content
// mutation. Callers can compare versions to detect changes.
func (t *TextBuffer) Version() uint64 {
	return t.version
}

// Cursor

// CursorPosition returns the cursor's absolute byte offset.
func (t *TextBuffer) CursorPosition() int {
	return t.cursor
}

// SetCursorPosition moves the cursor, clamping to [0, Len()].
func (t *TextBuffer) SetCursorPosition(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > t.Len() {
		pos = t.Len()
	}
	t.cursor = pos
}

// Editing

// InsertText inserts s verbatim at the given byte offset (clamped to the
// buffer). A cursor at or after the insertion point shifts right by
// len(s).
func (t *TextBuffer) InsertText(pos int, s string) {
	if len(s) == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > t.Len() {
		pos = t.Len()
	}
	t.gb.InsertSlice(pos, []byte(s)) //nolint:errcheck // pos clamped above
	if pos <= t.cursor {
		t.cursor += len(s)
	}
	t.contentChanged()
}

// InsertAtCursor inserts s at the cursor; the cursor ends up after the
// inserted text.
func (t *TextBuffer) InsertAtCursor(s string) {
	t.InsertText(t.cursor, s)
}

// DeleteText removes up to count bytes starting at pos. The count is
// clamped to the available length. A cursor after the deleted range
// shifts left by the removed count; a cursor inside it clamps to pos;
// a cursor before pos is untouched.
func (t *TextBuffer) DeleteText(pos, count int) {
	if pos < 0 || pos >= t.Len() || count <= 0 {
		return
	}
	if count > t.Len()-pos {
		count = t.Len() - pos
	}
	t.gb.EraseRange(pos, pos+count) //nolint:errcheck // range clamped above
	if t.cursor > pos {
		if t.cursor >= pos+count {
			t.cursor -= count
		} else {
			t.cursor = pos
		}
	}
	t.contentChanged()
}

// ReplaceText replaces count bytes at pos with the replacement text,
// composed as delete then insert.
func (t *TextBuffer) ReplaceText(pos, count int, replacement string) {
	t.DeleteText(pos, count)
	t.InsertText(pos, replacement)
}

// Line addressing

// ensureLineCache rebuilds the line-start cache if it is stale: a full
// scan for '\n'. A newline at the very end of the buffer does not start
// a new line.
func (t *TextBuffer) ensureLineCache() {
	if t.cacheValid {
		return
	}
	t.lineStarts = append(t.lineStarts[:0], 0)
	data := t.gb.Elems()
	for i, c := range data {
		if c == '\n' && i+1 < len(data) {
			t.lineStarts = append(t.lineStarts, i+1)
		}
	}
	t.cacheValid = true
}

// LineCount returns the number of lines. An empty buffer has one line; a
// trailing newline does not add an empty final line.
func (t *TextBuffer) LineCount() int {
	t.ensureLineCache()
	return len(t.lineStarts)
}

// lineBounds returns the [start, end) byte range of line i, excluding
// the line terminator. The caller must have validated i.
func (t *TextBuffer) lineBounds(i int) (int, int) {
	start := t.lineStarts[i]
	end := t.Len()
	if i+1 < len(t.lineStarts) {
		end = t.lineStarts[i+1] - 1
	} else if end > start {
		if c, ok := t.ByteAt(end - 1); ok && c == '\n' {
			end--
		}
	}
	return start, end
}

// Line returns the text of line i without its terminator, or "" when i
// is out of range.
func (t *TextBuffer) Line(i int) string {
	t.ensureLineCache()
	if i < 0 || i >= len(t.lineStarts) {
		return ""
	}
	start, end := t.lineBounds(i)
	return t.TextRange(start, end)
}

// LineLength returns the length of line i in bytes, excluding the
// terminator. Out-of-range lines report 0.
func (t *TextBuffer) LineLength(i int) int {
	t.ensureLineCache()
	if i < 0 || i >= len(t.lineStarts) {
		return 0
	}
	start, end := t.lineBounds(i)
	return end - start
}

// lineForOffset locates the line containing offset: an upper-bound
// binary search over the line starts, stepped back by one.
func (t *TextBuffer) lineForOffset(offset int) int {
	idx := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	})
	return idx - 1
}

// CursorLineColumn returns the cursor as a line/column pair plus its
// absolute offset. The column is measured in bytes from the line start.
func (t *TextBuffer) CursorLineColumn() Position {
	t.ensureLineCache()
	line := t.lineForOffset(t.cursor)
	return Position{
		Line:   line,
		Column: t.cursor - t.lineStarts[line],
		Offset: t.cursor,
	}
}

// SetCursorLineColumn places the cursor at the given line and column.
// A line past the end clamps to the end of the buffer; a column past the
// line end clamps to the line end.
func (t *TextBuffer) SetCursorLineColumn(line, col int) {
	t.ensureLineCache()
	if line < 0 {
		line = 0
	}
	if line >= len(t.lineStarts) {
		t.cursor = t.Len()
		return
	}
	if col < 0 {
		col = 0
	}
	start, end := t.lineBounds(line)
	pos := start + col
	if pos > end {
		pos = end
	}
	t.cursor = pos
}

// Stats

// Stats describes the buffer's storage shape; useful for diagnostics and
// benchmarks.
type Stats struct {
	Size           int
	GapSize        int
	Capacity       int
	GapRatio       float64
	LineCount      int
	LineCacheValid bool
}

// Stats returns a snapshot of the buffer's storage statistics.
func (t *TextBuffer) Stats() Stats {
	cacheValid := t.cacheValid
	s := Stats{
		Size:           t.gb.Len(),
		GapSize:        t.gb.GapLen(),
		Capacity:       t.gb.Cap(),
		LineCount:      t.LineCount(),
		LineCacheValid: cacheValid,
	}
	if s.Capacity > 0 {
		s.GapRatio = float64(s.GapSize) / float64(s.Capacity)
	}
	return s
}
