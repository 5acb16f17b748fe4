// Package editor holds the editing session: the current document text, the
// selection into it, and the history manager, behind an imperative command
// surface. Commands read the held state and mutate it in place; callers never
// pass documents around.
//
// The session is the explicit context the whole engine operates on. It is
// created at program start, reset wholesale when a new document is loaded,
// and torn down at exit; there are no ambient globals.
package editor

import (
	"sync"

	"github.com/marktide/marktide/internal/editor/heading"
	"github.com/marktide/marktide/internal/editor/history"
	"github.com/marktide/marktide/internal/editor/markup"
	"github.com/marktide/marktide/internal/editor/outline"
	"github.com/marktide/marktide/internal/editor/selection"
	"github.com/marktide/marktide/internal/editor/textutil"
)

// Session is an editing session over one document.
type Session struct {
	mu sync.Mutex

	doc  string
	sel  selection.Selection
	path string

	hist     *history.History
	histOpts []history.Option
	headings *outline.Extractor
	clip     Clipboard

	dirty    bool
	readOnly bool

	// pendingSel is the selection the surface must apply after its next
	// redraw. Offset-based selection math is only valid against up-to-date
	// layout, so restoration is deferred to the redraw tick rather than
	// applied synchronously.
	pendingSel    selection.Selection
	hasPendingSel bool
}

// New creates a session with default (empty) content.
func New(opts ...Option) *Session {
	s := &Session{
		headings: outline.NewExtractor(),
		clip:     systemClipboard{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hist = history.New(s.doc, s.histOpts...)
	return s
}

// Close cancels any pending debounce timer. The session is unusable after.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.Reset("")
}

// Text returns the current document text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Selection returns the current selection.
func (s *Session) Selection() selection.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// SetSelection moves the selection, clamped to the document bounds.
func (s *Session) SetSelection(sel selection.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = sel.Clamp(textutil.RuneLen(s.doc))
}

// Path returns the file path backing the document, if any.
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Dirty returns true if the document has unsaved changes.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkSaved records that the current text has been written out. History is
// untouched: saving never resets the undo stacks.
func (s *Session) MarkSaved(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	s.dirty = false
}

// SetDocument replaces the document wholesale, as on open or import. Any
// pending debounce timer is cancelled and both history stacks are cleared
// atomically with the swap.
func (s *Session) SetDocument(text, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = text
	s.path = path
	s.sel = selection.Caret(0)
	s.dirty = false
	s.hist.Reset(text)
	s.headings.Invalidate()
	s.queueSelectionLocked(s.sel)
}

// ============================================================================
// Markup commands
// ============================================================================

// ToggleMarkup toggles the inline markup pair for kind around the current
// selection. The result is committed to history as a discrete operation.
func (s *Session) ToggleMarkup(kind markup.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	res := markup.Toggle(s.doc, s.sel, kind)
	s.applyCommandLocked(res.Text, res.Sel)
	return nil
}

// InsertLink wraps the selection as a Markdown link, or inserts the link
// template at the caret.
func (s *Session) InsertLink() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	res := markup.InsertLink(s.doc, s.sel)
	s.applyCommandLocked(res.Text, res.Sel)
	return nil
}

// InsertImage wraps the selection as a Markdown image, or inserts the image
// template at the caret.
func (s *Session) InsertImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	res := markup.InsertImage(s.doc, s.sel)
	s.applyCommandLocked(res.Text, res.Sel)
	return nil
}

// ============================================================================
// Heading commands
// ============================================================================

// SetHeadingLevel sets, replaces, or toggles off the heading prefix on the
// caret's line.
func (s *Session) SetHeadingLevel(level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	res := heading.SetLevel(s.doc, s.sel, level)
	if res.Text == s.doc {
		return nil
	}
	s.applyCommandLocked(res.Text, res.Sel)
	return nil
}

// ShiftHeadingLevel moves the caret line's heading level by delta (clamped to
// 1..6); a no-op off headings.
func (s *Session) ShiftHeadingLevel(delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	res := heading.ShiftLevel(s.doc, s.sel, delta)
	if res.Text == s.doc {
		return nil
	}
	s.applyCommandLocked(res.Text, res.Sel)
	return nil
}

// ============================================================================
// Typing
// ============================================================================

// InsertText replaces the selection with text as part of a typing burst:
// the edit is coalesced by the history debounce rather than committed
// per keystroke.
func (s *Session) InsertText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}

	old := s.doc
	start, end := s.sel.Start(), s.sel.End()
	s.doc = textutil.Splice(s.doc, start, end, text)
	s.sel = selection.Caret(start + textutil.RuneLen(text))
	s.dirty = true
	s.hist.RecordTyping(old, s.doc)
	return nil
}

// DeleteBackward deletes the selection, or the rune before the caret.
func (s *Session) DeleteBackward() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}

	start, end := s.sel.Start(), s.sel.End()
	if start == end {
		if start == 0 {
			return nil
		}
		start--
	}

	old := s.doc
	s.doc = textutil.Splice(s.doc, start, end, "")
	s.sel = selection.Caret(start)
	s.dirty = true
	s.hist.RecordTyping(old, s.doc)
	return nil
}

// DeleteForward deletes the selection, or the rune after the caret.
func (s *Session) DeleteForward() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}

	start, end := s.sel.Start(), s.sel.End()
	if start == end {
		if end >= textutil.RuneLen(s.doc) {
			return nil
		}
		end++
	}

	old := s.doc
	s.doc = textutil.Splice(s.doc, start, end, "")
	s.sel = selection.Caret(start)
	s.dirty = true
	s.hist.RecordTyping(old, s.doc)
	return nil
}

// ============================================================================
// History
// ============================================================================

// Undo restores the previous snapshot. Undo during an active typing burst
// cancels the debounce timer and restores the pre-burst text. Empty history
// is a silent no-op.
func (s *Session) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.hist.Undo()
	if !ok {
		return
	}
	s.restoreLocked(text)
}

// Redo restores the next snapshot; a silent no-op when the redo stack is
// empty.
func (s *Session) Redo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.hist.Redo()
	if !ok {
		return
	}
	s.restoreLocked(text)
}

// CanUndo returns true if undo is available.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo returns true if redo is available.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// ============================================================================
// Clipboard commands
// ============================================================================

// Copy places the selected text on the clipboard; a no-op for a caret.
func (s *Session) Copy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sel.IsCaret() {
		return nil
	}
	if s.clip == nil {
		return ErrNoClipboard
	}
	return s.clip.WriteAll(textutil.Slice(s.doc, s.sel.Start(), s.sel.End()))
}

// Cut copies the selection to the clipboard and deletes it as a discrete
// committed operation.
func (s *Session) Cut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	if s.sel.IsCaret() {
		return nil
	}
	if s.clip == nil {
		return ErrNoClipboard
	}

	start, end := s.sel.Start(), s.sel.End()
	if err := s.clip.WriteAll(textutil.Slice(s.doc, start, end)); err != nil {
		return err
	}
	out := textutil.Splice(s.doc, start, end, "")
	s.applyCommandLocked(out, selection.Caret(start))
	return nil
}

// Paste replaces the selection with clipboard content as a discrete committed
// operation. Zero-length clipboard content is a silent no-op.
func (s *Session) Paste() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	if s.clip == nil {
		return ErrNoClipboard
	}

	content, err := s.clip.ReadAll()
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}

	start, end := s.sel.Start(), s.sel.End()
	out := textutil.Splice(s.doc, start, end, content)
	s.applyCommandLocked(out, selection.Caret(start+textutil.RuneLen(content)))
	return nil
}

// ============================================================================
// Outline
// ============================================================================

// Outline returns the document's headings, memoized on text identity.
func (s *Session) Outline() []outline.Heading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headings.Extract(s.doc)
}

// JumpToHeading moves the caret to the heading's line start and returns the
// scroll position that puts the line one third down the viewport.
func (s *Session) JumpToHeading(h outline.Heading, lineHeight, viewportHeight int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset := outline.Offset(s.doc, h)
	s.sel = selection.Caret(offset).Clamp(textutil.RuneLen(s.doc))
	s.queueSelectionLocked(s.sel)
	return outline.ScrollTarget(h.LineIndex, lineHeight, viewportHeight)
}

// ============================================================================
// Deferred selection restoration
// ============================================================================

// TakePendingSelection returns the selection queued for post-redraw
// application, if any, and clears it. The surface calls this once per redraw
// tick, after it has absorbed the latest text.
func (s *Session) TakePendingSelection() (selection.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPendingSel {
		return selection.Selection{}, false
	}
	s.hasPendingSel = false
	return s.pendingSel, true
}

// applyCommandLocked routes a successful command through history and installs
// the new text and selection.
func (s *Session) applyCommandLocked(text string, sel selection.Selection) {
	s.hist.Commit(s.doc, text)
	s.doc = text
	s.sel = sel.Clamp(textutil.RuneLen(text))
	s.dirty = true
	s.queueSelectionLocked(s.sel)
}

// restoreLocked installs a history snapshot.
func (s *Session) restoreLocked(text string) {
	s.doc = text
	s.sel = s.sel.Clamp(textutil.RuneLen(text))
	s.dirty = true
	s.queueSelectionLocked(s.sel)
}

func (s *Session) queueSelectionLocked(sel selection.Selection) {
	s.pendingSel = sel
	s.hasPendingSel = true
}
