// Package textutil provides pure offset and line utilities for document text.
//
// All offsets are rune offsets, not byte offsets: the editing engine counts
// characters the way a selection does, so every caller in internal/editor
// works in the same coordinate space.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuneLen returns the length of text in runes.
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}

// Clamp restricts offset to the valid range [0, RuneLen(text)].
func Clamp(text string, offset int) int {
	if offset < 0 {
		return 0
	}
	if n := RuneLen(text); offset > n {
		return n
	}
	return offset
}

// LineAt returns the index, start offset, and content (without the trailing
// newline) of the line containing the given rune offset. The scan accumulates
// line lengths plus one per newline until the running total reaches the
// offset; an offset sitting exactly on a line end belongs to that line.
func LineAt(text string, offset int) (index, start int, line string) {
	lines := strings.Split(text, "\n")
	pos := 0
	for i, l := range lines {
		n := utf8.RuneCountInString(l)
		if offset <= pos+n || i == len(lines)-1 {
			return i, pos, l
		}
		pos += n + 1
	}
	return 0, 0, ""
}

// LineStart returns the rune offset of the first character of the line with
// the given index. Indexes past the last line return the offset of the last
// line's start.
func LineStart(text string, index int) int {
	lines := strings.Split(text, "\n")
	pos := 0
	for i, l := range lines {
		if i == index || i == len(lines)-1 {
			return pos
		}
		pos += utf8.RuneCountInString(l) + 1
	}
	return pos
}

// TrimBounds shrinks the selection [start, end) inward past leading and
// trailing whitespace. The returned bounds satisfy start <= adjStart <=
// adjEnd <= end; adjStart == adjEnd means the selection is empty or
// whitespace-only.
func TrimBounds(text string, start, end int) (adjStart, adjEnd int) {
	r := []rune(text)
	if start < 0 {
		start = 0
	}
	if end > len(r) {
		end = len(r)
	}
	if start > end {
		start = end
	}
	adjStart, adjEnd = start, end
	for adjStart < adjEnd && unicode.IsSpace(r[adjStart]) {
		adjStart++
	}
	for adjEnd > adjStart && unicode.IsSpace(r[adjEnd-1]) {
		adjEnd--
	}
	return adjStart, adjEnd
}

// Slice returns the substring of text covering the rune range [start, end).
func Slice(text string, start, end int) string {
	r := []rune(text)
	if start < 0 {
		start = 0
	}
	if end > len(r) {
		end = len(r)
	}
	if start >= end {
		return ""
	}
	return string(r[start:end])
}

// Splice replaces the rune range [start, end) of text with repl and returns
// the new document string. Documents are immutable per version; callers
// always receive a full replacement string.
func Splice(text string, start, end int, repl string) string {
	r := []rune(text)
	if start < 0 {
		start = 0
	}
	if end > len(r) {
		end = len(r)
	}
	if start > end {
		start = end
	}
	var b strings.Builder
	b.Grow(len(text) + len(repl))
	b.WriteString(string(r[:start]))
	b.WriteString(repl)
	b.WriteString(string(r[end:]))
	return b.String()
}
