package textbuf

// Option is a functional option for configuring a TextBuffer.
type Option func(*TextBuffer)

// WithDefaultLineEnding sets the convention DetectLineEnding reports for
// a buffer that contains no line terminators. The default is LF; making
// it an explicit input keeps behavior deterministic across platforms.
func WithDefaultLineEnding(le LineEnding) Option {
	return func(t *TextBuffer) {
		t.defaultEOL = le
	}
}

// SetDefaultLineEnding changes the fallback convention after
// construction, typically to the style detected in freshly loaded
// content.
func (t *TextBuffer) SetDefaultLineEnding(le LineEnding) {
	t.defaultEOL = le
}

// WithLF configures LF (\n) as the fallback convention.
func WithLF() Option {
	return WithDefaultLineEnding(LineEndingLF)
}

// WithCRLF configures CRLF (\r\n) as the fallback convention.
func WithCRLF() Option {
	return WithDefaultLineEnding(LineEndingCRLF)
}

// WithCR configures CR (\r) as the fallback convention.
func WithCR() Option {
	return WithDefaultLineEnding(LineEndingCR)
}
