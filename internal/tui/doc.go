// Package tui renders a document in a full-screen terminal editor built
// on tcell. It handles cursor motion, basic editing keys, scrolling, and
// a status line; all text state lives in the document's buffer.
package tui
