// Package render turns Markdown document text into HTML for the preview
// pane. Rendering is a pure, total function: malformed input degrades
// gracefully and never fails.
package render

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// md is configured once: GFM gives strikethrough (~~) support, and unsafe
// rendering keeps raw inline HTML such as <u> and comments in the output.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(ghtml.WithUnsafe()),
)

// ToHTML renders Markdown text to an HTML string. It never fails: if the
// renderer rejects the input, the text is returned escaped inside a <pre>
// block instead.
func ToHTML(text string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "<pre>" + html.EscapeString(text) + "</pre>"
	}
	return buf.String()
}
