package textbuf

import (
	"regexp"
	"strings"
)

// FindResult reports the outcome of a search. Position and Length are
// meaningful only when Found is true.
type FindResult struct {
	Found    bool
	Position int
	Length   int
}

// FindText searches forward for the literal needle starting at the given
// byte offset. An empty needle or a start at or past the end yields a
// not-found result.
func (t *TextBuffer) FindText(needle string, start int) FindResult {
	if len(needle) == 0 || start < 0 || start >= t.Len() {
		return FindResult{}
	}
	snapshot := t.String()
	idx := strings.Index(snapshot[start:], needle)
	if idx < 0 {
		return FindResult{}
	}
	return FindResult{Found: true, Position: start + idx, Length: len(needle)}
}

// FindTextReverse searches backward for the literal needle: it returns
// the last occurrence whose start is at or before the given offset.
// Pass a negative start to search from the end of the buffer.
func (t *TextBuffer) FindTextReverse(needle string, start int) FindResult {
	if len(needle) == 0 || t.Len() == 0 {
		return FindResult{}
	}
	snapshot := t.String()
	if start < 0 || start >= len(snapshot) {
		start = len(snapshot) - 1
	}
	limit := start + len(needle)
	if limit > len(snapshot) {
		limit = len(snapshot)
	}
	idx := strings.LastIndex(snapshot[:limit], needle)
	if idx < 0 {
		return FindResult{}
	}
	return FindResult{Found: true, Position: idx, Length: len(needle)}
}

// FindRegex searches forward for the pattern starting at the given byte
// offset. A malformed pattern is treated as "not found"; the search API
// never surfaces a syntax error.
func (t *TextBuffer) FindRegex(pattern string, start int) FindResult {
	if len(pattern) == 0 || start < 0 || start >= t.Len() {
		return FindResult{}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return FindResult{}
	}
	snapshot := t.String()
	loc := re.FindStringIndex(snapshot[start:])
	if loc == nil {
		return FindResult{}
	}
	return FindResult{Found: true, Position: start + loc[0], Length: loc[1] - loc[0]}
}

// FindRegexReverse returns the last match of the pattern that starts
// before the given offset. Pass a negative start to search the whole
// buffer. Malformed patterns yield a not-found result.
func (t *TextBuffer) FindRegexReverse(pattern string, start int) FindResult {
	if len(pattern) == 0 || t.Len() == 0 {
		return FindResult{}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return FindResult{}
	}
	snapshot := t.String()
	if start < 0 || start > len(snapshot) {
		start = len(snapshot)
	}

	// Scan forward through [0, start) keeping the final match; advancing
	// by one byte after each hit keeps overlapping matches visible.
	var last FindResult
	searchStart := 0
	for searchStart < start {
		loc := re.FindStringIndex(snapshot[searchStart:start])
		if loc == nil {
			break
		}
		last = FindResult{
			Found:    true,
			Position: searchStart + loc[0],
			Length:   loc[1] - loc[0],
		}
		searchStart = last.Position + 1
	}
	return last
}

// ReplaceAll replaces every occurrence of the literal needle and returns
// the number of replacements. An empty needle replaces nothing. The scan
// resumes after each replacement, so a replacement containing the needle
// is not rescanned; with an empty replacement the buffer shrinks on each
// hit, which guarantees termination.
func (t *TextBuffer) ReplaceAll(needle, replacement string) int {
	if len(needle) == 0 {
		return 0
	}
	count := 0
	pos := 0
	for {
		res := t.FindText(needle, pos)
		if !res.Found {
			break
		}
		t.ReplaceText(res.Position, res.Length, replacement)
		count++
		pos = res.Position + len(replacement)
	}
	return count
}

// ReplaceAllRegex replaces every match of the pattern and returns the
// number of replacements. The replacement is inserted literally (no
// capture-group expansion). A malformed pattern replaces nothing. A
// zero-width match forces the scan position one byte past the inserted
// replacement so the loop always makes progress.
func (t *TextBuffer) ReplaceAllRegex(pattern, replacement string) int {
	if len(pattern) == 0 {
		return 0
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0
	}

	count := 0
	pos := 0
	for pos <= t.Len() {
		snapshot := t.String()
		loc := re.FindStringIndex(snapshot[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		length := loc[1] - loc[0]
		t.ReplaceText(start, length, replacement)
		count++
		pos = start + len(replacement)
		if length == 0 {
			pos++
		}
	}
	return count
}
