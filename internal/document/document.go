package document

import (
	"errors"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ewagner/quill/internal/textbuf"
)

// Errors returned by document operations.
var (
	ErrNoPath = errors.New("document has no file path")
)

// Document couples a text buffer with its on-disk identity: a stable ID,
// a file path, and the buffer version last written out. Everything else
// (content, cursor, line structure) lives in the buffer.
type Document struct {
	id           string
	path         string
	buf          *textbuf.TextBuffer
	savedVersion uint64
}

// New creates an empty untitled document.
func New(opts ...textbuf.Option) *Document {
	return &Document{
		id:  uuid.New().String(),
		buf: textbuf.New(opts...),
	}
}

// NewAt creates an empty document that will save to the given path. The
// file is not created until the first save.
func NewAt(path string, opts ...textbuf.Option) *Document {
	d := New(opts...)
	d.path = path
	return d
}

// Open creates a document backed by the given file. A missing or
// unreadable file is an error; the document is not created.
func Open(path string, opts ...textbuf.Option) (*Document, error) {
	buf := textbuf.New(opts...)
	if err := buf.LoadFromFile(path); err != nil {
		return nil, err
	}
	// Adopt the file's own convention so edits after a full clear still
	// use the style it arrived with.
	buf.SetDefaultLineEnding(buf.DetectLineEnding())
	d := &Document{
		id:   uuid.New().String(),
		path: path,
		buf:  buf,
	}
	d.savedVersion = buf.Version()
	return d, nil
}

// ID returns the document's stable identifier. It survives renames and
// saves.
func (d *Document) ID() string { return d.id }

// Path returns the backing file path, or "" for an untitled document.
func (d *Document) Path() string { return d.path }

// Name returns the base name of the backing file, or "untitled" when the
// document has no path.
func (d *Document) Name() string {
	if d.path == "" {
		return "untitled"
	}
	return filepath.Base(d.path)
}

// Buffer returns the underlying text buffer.
func (d *Document) Buffer() *textbuf.TextBuffer { return d.buf }

// Dirty reports whether the buffer has changed since the last save. A
// document that has never been saved is dirty as soon as it has content.
func (d *Document) Dirty() bool {
	return d.buf.Version() != d.savedVersion
}

// Save writes the buffer to the document's path. It fails with ErrNoPath
// for an untitled document.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	if err := d.buf.SaveToFile(d.path); err != nil {
		return err
	}
	d.savedVersion = d.buf.Version()
	return nil
}

// SaveAs writes the buffer to the given path and adopts it as the
// document's path.
func (d *Document) SaveAs(path string) error {
	if err := d.buf.SaveToFile(path); err != nil {
		return err
	}
	d.path = path
	d.savedVersion = d.buf.Version()
	return nil
}
