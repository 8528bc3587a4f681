// Package textbuf layers document semantics over a byte gap buffer: a
// single cursor, line/column addressing backed by a lazily rebuilt
// line-start cache, literal and regexp search, bulk replace, line-ending
// detection and conversion, UTF-8 validation, and byte-exact file I/O.
//
// The buffer addresses content by byte offset throughout. Every content
// mutation invalidates the line cache; the next line or column query
// rebuilds it with a single scan.
//
// Basic usage:
//
//	t := textbuf.FromString("hello\nworld")
//	t.InsertText(5, ",")        // "hello,\nworld"
//	line := t.Line(1)           // "world"
//	res := t.FindText("wor", 0) // Found at 7
//
// Search patterns use the standard regexp syntax; a malformed pattern is
// reported as "not found" rather than as an error, so callers cannot
// distinguish a bad pattern from an absent match through the search API.
//
// TextBuffer is single-threaded by design: no internal locking, no
// goroutines. Callers sharing a buffer across goroutines must serialize
// access themselves.
package textbuf
