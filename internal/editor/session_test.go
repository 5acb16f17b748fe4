package editor

import (
	"testing"
	"time"

	"github.com/marktide/marktide/internal/editor/markup"
	"github.com/marktide/marktide/internal/editor/selection"
)

// fakeClipboard is an in-memory Clipboard for tests.
type fakeClipboard struct {
	content string
}

func (f *fakeClipboard) ReadAll() (string, error)     { return f.content, nil }
func (f *fakeClipboard) WriteAll(text string) error   { f.content = text; return nil }

func newTestSession(content string) *Session {
	return New(
		WithContent(content),
		WithClipboard(&fakeClipboard{}),
		WithDebounce(25*time.Millisecond),
	)
}

func TestToggleCommitsDiscreteOperation(t *testing.T) {
	s := newTestSession("hello")
	s.SetSelection(selection.New(0, 5))

	if err := s.ToggleMarkup(markup.Bold); err != nil {
		t.Fatal(err)
	}
	if s.Text() != "**hello**" {
		t.Fatalf("Text = %q", s.Text())
	}
	if got := s.Selection(); got.Start() != 2 || got.End() != 7 {
		t.Errorf("selection = %v, want interior span", got)
	}

	s.Undo()
	if s.Text() != "hello" {
		t.Errorf("undo = %q, want original text", s.Text())
	}

	s.Redo()
	if s.Text() != "**hello**" {
		t.Errorf("redo = %q", s.Text())
	}
}

func TestTypingIsCoalesced(t *testing.T) {
	s := newTestSession("")
	for _, ch := range []string{"a", "b", "c"} {
		if err := s.InsertText(ch); err != nil {
			t.Fatal(err)
		}
	}
	if s.Text() != "abc" {
		t.Fatalf("Text = %q", s.Text())
	}

	// Undo while the burst is still pending restores the pre-burst text.
	s.Undo()
	if s.Text() != "" {
		t.Errorf("undo during burst = %q, want empty", s.Text())
	}

	s.Redo()
	if s.Text() != "abc" {
		t.Errorf("redo = %q, want abc", s.Text())
	}
}

func TestDeleteBackward(t *testing.T) {
	s := newTestSession("abc")
	s.SetSelection(selection.Caret(3))
	if err := s.DeleteBackward(); err != nil {
		t.Fatal(err)
	}
	if s.Text() != "ab" {
		t.Errorf("Text = %q", s.Text())
	}

	// At offset zero it is a no-op.
	s.SetSelection(selection.Caret(0))
	if err := s.DeleteBackward(); err != nil {
		t.Fatal(err)
	}
	if s.Text() != "ab" {
		t.Errorf("delete at start changed text: %q", s.Text())
	}
}

func TestPasteEmptyClipboardIsNoop(t *testing.T) {
	clip := &fakeClipboard{}
	s := New(WithContent("text"), WithClipboard(clip))
	s.SetSelection(selection.Caret(0))

	if err := s.Paste(); err != nil {
		t.Fatal(err)
	}
	if s.Text() != "text" {
		t.Errorf("empty paste changed text: %q", s.Text())
	}
	if s.CanUndo() {
		t.Error("empty paste pushed history")
	}
}

func TestCutAndPaste(t *testing.T) {
	clip := &fakeClipboard{}
	s := New(WithContent("hello world"), WithClipboard(clip))
	s.SetSelection(selection.New(0, 5))

	if err := s.Cut(); err != nil {
		t.Fatal(err)
	}
	if s.Text() != " world" {
		t.Errorf("after cut = %q", s.Text())
	}
	if clip.content != "hello" {
		t.Errorf("clipboard = %q", clip.content)
	}

	s.SetSelection(selection.Caret(6))
	if err := s.Paste(); err != nil {
		t.Fatal(err)
	}
	if s.Text() != " worldhello" {
		t.Errorf("after paste = %q", s.Text())
	}
}

func TestSetDocumentResetsHistory(t *testing.T) {
	s := newTestSession("old")
	s.SetSelection(selection.New(0, 3))
	if err := s.ToggleMarkup(markup.Bold); err != nil {
		t.Fatal(err)
	}
	if !s.CanUndo() {
		t.Fatal("expected undo history")
	}

	s.SetDocument("# fresh\nbody", "/tmp/fresh.md")

	if s.CanUndo() || s.CanRedo() {
		t.Error("open did not clear history")
	}
	if s.Dirty() {
		t.Error("freshly opened document should not be dirty")
	}
	if !s.Selection().Equals(selection.Caret(0)) {
		t.Errorf("selection after open = %v", s.Selection())
	}
}

func TestMarkSavedKeepsHistory(t *testing.T) {
	s := newTestSession("draft")
	s.SetSelection(selection.New(0, 5))
	if err := s.ToggleMarkup(markup.Italic); err != nil {
		t.Fatal(err)
	}

	s.MarkSaved("/tmp/draft.md")

	if s.Dirty() {
		t.Error("save should clear the dirty flag")
	}
	if !s.CanUndo() {
		t.Error("save must never reset history")
	}
}

func TestReadOnlyRejectsMutation(t *testing.T) {
	s := New(WithContent("locked"), WithReadOnly(true))
	s.SetSelection(selection.New(0, 6))
	if err := s.ToggleMarkup(markup.Bold); err != ErrReadOnly {
		t.Errorf("ToggleMarkup error = %v, want ErrReadOnly", err)
	}
	if err := s.InsertText("x"); err != ErrReadOnly {
		t.Errorf("InsertText error = %v, want ErrReadOnly", err)
	}
}

func TestOutlineAndJump(t *testing.T) {
	s := newTestSession("# A\ntext\n## B\n### C")

	headings := s.Outline()
	if len(headings) != 3 {
		t.Fatalf("outline = %v", headings)
	}

	scroll := s.JumpToHeading(headings[1], 1, 30)
	if got := s.Selection(); !got.Equals(selection.Caret(9)) {
		t.Errorf("caret after jump = %v, want Caret(9)", got)
	}
	// Line 2 with the viewport-third adjustment clamps to zero.
	if scroll != 0 {
		t.Errorf("scroll target = %d, want 0", scroll)
	}
}

func TestPendingSelectionIsDeferred(t *testing.T) {
	s := newTestSession("hello")
	s.SetSelection(selection.New(0, 5))

	// Nothing queued before a command runs.
	s.TakePendingSelection()

	if err := s.ToggleMarkup(markup.Code); err != nil {
		t.Fatal(err)
	}

	sel, ok := s.TakePendingSelection()
	if !ok {
		t.Fatal("expected a queued selection after a command")
	}
	if sel.Start() != 1 || sel.End() != 6 {
		t.Errorf("queued selection = %v", sel)
	}

	// Draining is one-shot.
	if _, ok := s.TakePendingSelection(); ok {
		t.Error("pending selection not cleared after take")
	}
}
