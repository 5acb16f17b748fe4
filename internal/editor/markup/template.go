package markup

import (
	"unicode/utf8"

	"github.com/marktide/marktide/internal/editor/selection"
	"github.com/marktide/marktide/internal/editor/textutil"
)

// Link and image insertion are templates, not toggles: there is no presence
// detection and no removal. The returned selection always covers the
// placeholder token the user is expected to type over.

const (
	linkTemplate  = "[text](url)"
	imageTemplate = "![description](url \"caption\")"
)

// InsertLink wraps a non-empty trimmed selection as [text](url), or inserts
// the placeholder template at the caret. The url token is selected either way.
func InsertLink(text string, sel selection.Selection) Result {
	r := []rune(text)
	start := clampOffset(sel.Start(), len(r))
	end := clampOffset(sel.End(), len(r))
	adjStart, adjEnd := textutil.TrimBounds(text, start, end)

	if adjStart >= adjEnd {
		out := textutil.Splice(text, start, start, linkTemplate)
		// [text]( is 7 runes; url is 3.
		return Result{Text: out, Sel: selection.New(start+7, start+10)}
	}

	label := string(r[adjStart:adjEnd])
	out := string(r[:adjStart]) + "[" + label + "](url)" + string(r[adjEnd:])
	urlStart := adjStart + 1 + utf8.RuneCountInString(label) + 2
	return Result{Text: out, Sel: selection.New(urlStart, urlStart+3)}
}

// InsertImage wraps a non-empty trimmed selection as ![text](url "caption"),
// or inserts the placeholder template at the caret. With a selection the url
// token is selected; with a caret the description token is selected.
func InsertImage(text string, sel selection.Selection) Result {
	r := []rune(text)
	start := clampOffset(sel.Start(), len(r))
	end := clampOffset(sel.End(), len(r))
	adjStart, adjEnd := textutil.TrimBounds(text, start, end)

	if adjStart >= adjEnd {
		out := textutil.Splice(text, start, start, imageTemplate)
		// ![ is 2 runes; description is 11.
		return Result{Text: out, Sel: selection.New(start+2, start+13)}
	}

	label := string(r[adjStart:adjEnd])
	out := string(r[:adjStart]) + "![" + label + "](url \"caption\")" + string(r[adjEnd:])
	urlStart := adjStart + 2 + utf8.RuneCountInString(label) + 2
	return Result{Text: out, Sel: selection.New(urlStart, urlStart+3)}
}
