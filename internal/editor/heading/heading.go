// Package heading implements line-oriented heading mutation: setting,
// clearing, and shifting the ATX heading prefix on the line containing the
// caret.
package heading

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/marktide/marktide/internal/editor/selection"
	"github.com/marktide/marktide/internal/editor/textutil"
)

// MinLevel and MaxLevel bound valid heading levels.
const (
	MinLevel = 1
	MaxLevel = 6
)

// prefixRE matches an optional leading run of 1-6 '#' characters followed by
// whitespace.
var prefixRE = regexp.MustCompile(`^(#{1,6})\s+`)

// Result is the outcome of a heading operation: the new document text and
// the new caret position (end of the rewritten line).
type Result struct {
	Text string
	Sel  selection.Selection
}

// Level returns the heading level of a line, or 0 if the line is not a
// heading.
func Level(line string) int {
	m := prefixRE.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	return len(m[1])
}

// body returns the line content with any heading prefix stripped.
func body(line string) string {
	return prefixRE.ReplaceAllString(line, "")
}

// SetLevel sets, replaces, or toggles off the heading prefix on the line
// containing the caret. If the line already carries a heading at exactly
// level, the prefix is stripped and the line becomes plain text; otherwise
// the prefix is set to level '#' characters plus one space, preserving the
// rest of the line verbatim. The caret lands at the end of the rewritten
// line. Levels outside [1, 6] are a no-op.
func SetLevel(text string, sel selection.Selection, level int) Result {
	if level < MinLevel || level > MaxLevel {
		return Result{Text: text, Sel: sel}
	}

	caret := textutil.Clamp(text, sel.Head)
	_, lineStart, line := textutil.LineAt(text, caret)

	var newLine string
	if Level(line) == level {
		newLine = body(line)
	} else {
		newLine = strings.Repeat("#", level) + " " + body(line)
	}

	return rewriteLine(text, lineStart, line, newLine)
}

// ShiftLevel moves the heading level of the caret's line by delta, clamped to
// [1, 6]. By Markdown convention a smaller heading number is more prominent,
// so delta = -1 increases prominence (H2 -> H1) and delta = +1 decreases it.
// Lines that are not headings, and shifts that leave the level unchanged,
// are no-ops.
func ShiftLevel(text string, sel selection.Selection, delta int) Result {
	caret := textutil.Clamp(text, sel.Head)
	_, lineStart, line := textutil.LineAt(text, caret)

	current := Level(line)
	if current == 0 {
		return Result{Text: text, Sel: sel}
	}

	newLevel := current + delta
	if newLevel < MinLevel {
		newLevel = MinLevel
	}
	if newLevel > MaxLevel {
		newLevel = MaxLevel
	}
	if newLevel == current {
		return Result{Text: text, Sel: sel}
	}

	newLine := strings.Repeat("#", newLevel) + " " + body(line)
	return rewriteLine(text, lineStart, line, newLine)
}

// rewriteLine replaces one line of text and places the caret at its end.
func rewriteLine(text string, lineStart int, oldLine, newLine string) Result {
	lineEnd := lineStart + utf8.RuneCountInString(oldLine)
	out := textutil.Splice(text, lineStart, lineEnd, newLine)
	return Result{
		Text: out,
		Sel:  selection.Caret(lineStart + utf8.RuneCountInString(newLine)),
	}
}
