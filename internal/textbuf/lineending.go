package textbuf

// LineEnding specifies a line terminator convention.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the escaped representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual terminator bytes.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding classifies the buffer's dominant line terminator.
// When more than one convention is present the priority is
// CRLF > LF > CR. A buffer with no terminators reports the configured
// default.
func (t *TextBuffer) DetectLineEnding() LineEnding {
	data := t.gb.Elems()
	var hasCRLF, hasLF, hasCR bool

	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				hasCRLF = true
				i++
			} else {
				hasCR = true
			}
		case '\n':
			hasLF = true
		}
	}

	switch {
	case hasCRLF:
		return LineEndingCRLF
	case hasLF:
		return LineEndingLF
	case hasCR:
		return LineEndingCR
	default:
		return t.defaultEOL
	}
}

// ConvertLineEndings rewrites every line terminator to the target
// convention, treating "\r\n" as a single unit. The operation is
// idempotent: converting twice yields the same content as converting
// once.
func (t *TextBuffer) ConvertLineEndings(target LineEnding) {
	data := t.gb.Elems()
	eol := []byte(target.Sequence())
	out := make([]byte, 0, len(data)+len(data)/16)

	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\r':
			out = append(out, eol...)
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
		case '\n':
			out = append(out, eol...)
		default:
			out = append(out, data[i])
		}
	}

	t.gb.AssignSlice(out)
	if t.cursor > t.Len() {
		t.cursor = t.Len()
	}
	t.contentChanged()
}
