// Package document ties a text buffer to a file on disk. A Document
// tracks a stable identifier, the backing path, and whether the buffer
// has unsaved changes, leaving all content manipulation to the buffer
// itself.
package document
