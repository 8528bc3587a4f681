package textbuf

// isSpace reports whether b is ASCII whitespace. Word motion operates at
// the byte level, matching the buffer's byte-offset addressing.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// MoveCursorToStart places the cursor at offset 0.
func (t *TextBuffer) MoveCursorToStart() {
	t.cursor = 0
}

// MoveCursorToEnd places the cursor after the last byte.
func (t *TextBuffer) MoveCursorToEnd() {
	t.cursor = t.Len()
}

// MoveCursorLeft steps the cursor back one byte.
func (t *TextBuffer) MoveCursorLeft() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// MoveCursorRight steps the cursor forward one byte.
func (t *TextBuffer) MoveCursorRight() {
	if t.cursor < t.Len() {
		t.cursor++
	}
}

// MoveCursorUp moves to the previous line, keeping the column where
// possible.
func (t *TextBuffer) MoveCursorUp() {
	pos := t.CursorLineColumn()
	if pos.Line > 0 {
		t.SetCursorLineColumn(pos.Line-1, pos.Column)
	}
}

// MoveCursorDown moves to the next line, keeping the column where
// possible.
func (t *TextBuffer) MoveCursorDown() {
	pos := t.CursorLineColumn()
	if pos.Line+1 < t.LineCount() {
		t.SetCursorLineColumn(pos.Line+1, pos.Column)
	}
}

// MoveCursorLineStart moves to column 0 of the current line.
func (t *TextBuffer) MoveCursorLineStart() {
	pos := t.CursorLineColumn()
	t.SetCursorLineColumn(pos.Line, 0)
}

// MoveCursorLineEnd moves past the last byte of the current line,
// before its terminator.
func (t *TextBuffer) MoveCursorLineEnd() {
	pos := t.CursorLineColumn()
	t.SetCursorLineColumn(pos.Line, t.LineLength(pos.Line))
}

// MoveCursorWordLeft moves to the start of the previous word: it skips
// the whitespace run behind the cursor, then the token before it.
func (t *TextBuffer) MoveCursorWordLeft() {
	if t.cursor == 0 {
		return
	}
	pos := t.cursor - 1
	for pos > 0 && isSpace(t.gb.Get(pos)) {
		pos--
	}
	for pos > 0 && !isSpace(t.gb.Get(pos-1)) {
		pos--
	}
	t.cursor = pos
}

// MoveCursorWordRight moves to the start of the next word: it skips the
// rest of the current token, then the whitespace run after it.
func (t *TextBuffer) MoveCursorWordRight() {
	n := t.Len()
	if t.cursor >= n {
		return
	}
	pos := t.cursor
	for pos < n && !isSpace(t.gb.Get(pos)) {
		pos++
	}
	for pos < n && isSpace(t.gb.Get(pos)) {
		pos++
	}
	t.cursor = pos
}
