package editor

import (
	"time"

	"github.com/marktide/marktide/internal/editor/history"
)

// Option configures a Session.
type Option func(*Session)

// WithContent sets the initial document text.
func WithContent(text string) Option {
	return func(s *Session) {
		s.doc = text
	}
}

// WithClipboard substitutes the clipboard backend.
func WithClipboard(c Clipboard) Option {
	return func(s *Session) {
		s.clip = c
	}
}

// WithHistoryDepth sets the undo/redo stack depth cap.
func WithHistoryDepth(n int) Option {
	return func(s *Session) {
		s.histOpts = append(s.histOpts, history.WithMaxEntries(n))
	}
}

// WithDebounce sets the typing coalescing delay.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		s.histOpts = append(s.histOpts, history.WithDebounce(d))
	}
}

// WithReadOnly makes every mutating operation fail with ErrReadOnly.
func WithReadOnly(readOnly bool) Option {
	return func(s *Session) {
		s.readOnly = readOnly
	}
}
