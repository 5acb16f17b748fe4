// Package markup implements selection-aware inline markup toggling for
// Markdown text: bold, italic, underline, strikethrough, code and comment
// pairs, plus fixed-template link and image insertion.
//
// Presence detection uses fixed-width lookaround at the trimmed selection
// bounds only; the interior of the selection is never scanned. This is
// inherently ambiguous for nested or overlapping markup, which is a known
// limitation of the format, not something this package tries to repair.
package markup

import (
	"unicode/utf8"

	"github.com/marktide/marktide/internal/editor/selection"
	"github.com/marktide/marktide/internal/editor/textutil"
)

// Kind identifies an inline markup pair.
type Kind int

const (
	Bold Kind = iota
	Italic
	Underline
	Strikethrough
	Code
	Comment
)

// String returns the name of the markup kind.
func (k Kind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Strikethrough:
		return "strikethrough"
	case Code:
		return "code"
	case Comment:
		return "comment"
	default:
		return "unknown"
	}
}

// pair holds the opening and closing marker strings for a kind.
type pair struct {
	prefix string
	suffix string
}

var pairs = map[Kind]pair{
	Bold:          {"**", "**"},
	Italic:        {"*", "*"},
	Underline:     {"<u>", "</u>"},
	Strikethrough: {"~~", "~~"},
	Code:          {"`", "`"},
	Comment:       {"<!-- ", " -->"},
}

// Result is the outcome of a markup operation: the new document text and the
// new selection into it.
type Result struct {
	Text string
	Sel  selection.Selection
}

// Toggle adds the markup pair for kind around the selection if absent, or
// removes it if present. Applying Toggle twice with the returned selection
// restores equivalent content (self-inverse up to whitespace normalization):
// markup is applied to the whitespace-trimmed interior of the selection and
// surrounding whitespace stays outside the markers.
func Toggle(text string, sel selection.Selection, kind Kind) Result {
	p := pairs[kind]
	r := []rune(text)
	start := clampOffset(sel.Start(), len(r))
	end := clampOffset(sel.End(), len(r))

	adjStart, adjEnd := textutil.TrimBounds(text, start, end)
	pl := utf8.RuneCountInString(p.prefix)
	sl := utf8.RuneCountInString(p.suffix)

	// Empty or whitespace-only selection: insert an empty marker pair at the
	// caret and leave the caret inside it.
	if adjStart >= adjEnd {
		out := textutil.Splice(text, start, start, p.prefix+p.suffix)
		return Result{Text: out, Sel: selection.Caret(start + pl)}
	}

	if isPresent(r, adjStart, adjEnd, kind) {
		out := string(r[:adjStart-pl]) + string(r[adjStart:adjEnd]) + string(r[adjEnd+sl:])
		return Result{Text: out, Sel: selection.New(start-pl, end-pl)}
	}

	out := string(r[:adjStart]) + p.prefix + string(r[adjStart:adjEnd]) + p.suffix + string(r[adjEnd:])
	return Result{Text: out, Sel: selection.New(adjStart+pl, adjEnd+pl)}
}

// isPresent reports whether the marker pair for kind appears immediately
// before adjStart and immediately after adjEnd. Italic additionally verifies
// that the two-character lookback and lookahead are not bold markers, since
// bold markers are structurally a superset of italic markers.
func isPresent(r []rune, adjStart, adjEnd int, kind Kind) bool {
	p := pairs[kind]
	if !runsBefore(r, adjStart, p.prefix) || !runsAfter(r, adjEnd, p.suffix) {
		return false
	}
	if kind == Italic {
		if runsBefore(r, adjStart, "**") || runsAfter(r, adjEnd, "**") {
			return false
		}
	}
	return true
}

// runsBefore reports whether marker occupies the runes ending at offset end.
func runsBefore(r []rune, end int, marker string) bool {
	m := []rune(marker)
	if end-len(m) < 0 {
		return false
	}
	return string(r[end-len(m):end]) == marker
}

// runsAfter reports whether marker occupies the runes starting at offset start.
func runsAfter(r []rune, start int, marker string) bool {
	m := []rune(marker)
	if start+len(m) > len(r) {
		return false
	}
	return string(r[start:start+len(m)]) == marker
}

func clampOffset(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
