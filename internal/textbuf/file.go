package textbuf

import (
	"fmt"
	"os"
)

// LoadFromFile replaces the buffer content with the file's bytes, exactly
// as stored: no decoding, no normalization. The cursor resets to 0 and
// the line cache is invalidated. On failure the buffer is left cleared.
func (t *TextBuffer) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		t.gb.Clear()
		t.cursor = 0
		t.contentChanged()
		return fmt.Errorf("load %s: %w", path, err)
	}
	t.gb.AssignSlice(data)
	t.cursor = 0
	t.contentChanged()
	return nil
}

// SaveToFile writes the buffer content byte-for-byte. A failed save may
// leave a partial file; no recovery is attempted.
func (t *TextBuffer) SaveToFile(path string) error {
	if err := os.WriteFile(path, t.gb.Elems(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
