// Package history provides coalesced undo/redo for the editing engine.
//
// Entries are full document snapshots, never diffs. Direct commands commit a
// snapshot immediately; continuous typing is coalesced into a single entry by
// a debounce timer that captures the text from before the burst began. Both
// stacks are bounded and evict oldest-first.
package history

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Defaults for history configuration.
const (
	DefaultMaxEntries = 200
	DefaultDebounce   = 700 * time.Millisecond
)

// pendingBurst tracks a single uncommitted interval of continuous typing.
// baseline is the text from before the first keystroke of the burst; latest
// is the text after the most recent keystroke.
type pendingBurst struct {
	baseline string
	latest   string
	timer    *time.Timer
}

// History manages the undo and redo stacks for one document.
type History struct {
	mu sync.Mutex

	undoStack []string
	redoStack []string

	// lastCommitted is the snapshot the document held the last time history
	// advanced; it is what undo/redo exchange with the stacks.
	lastCommitted string

	pending *pendingBurst

	maxEntries int
	debounce   time.Duration
}

// Option configures a History.
type Option func(*History)

// WithMaxEntries sets the stack depth cap.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.maxEntries = n
		}
	}
}

// WithDebounce sets the typing coalescing delay.
func WithDebounce(d time.Duration) Option {
	return func(h *History) {
		if d > 0 {
			h.debounce = d
		}
	}
}

// New creates a History whose last committed snapshot is initial.
func New(initial string, opts ...Option) *History {
	h := &History{
		lastCommitted: initial,
		maxEntries:    DefaultMaxEntries,
		debounce:      DefaultDebounce,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Reset cancels any pending burst, clears both stacks, and points the last
// committed snapshot at text. Called when a brand-new document is loaded;
// never on save.
func (h *History) Reset(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cancelPendingLocked()
	h.undoStack = nil
	h.redoStack = nil
	h.lastCommitted = text
}

// Commit records a direct command that changed the document from before to
// after. Any in-progress typing burst is committed first so the command gets
// its own discrete entry. The redo stack is cleared.
func (h *History) Commit(before, after string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.flushPendingLocked(before)
	h.undoStack = pushCapped(h.undoStack, before, h.maxEntries)
	h.redoStack = nil
	h.lastCommitted = after
}

// RecordTyping notes one keystroke of continuous typing that changed the
// document from before to after. The first keystroke of a burst starts the
// debounce timer and captures before as the burst baseline; further
// keystrokes restart the timer without re-baselining. Nothing is pushed
// until the timer expires.
func (h *History) RecordTyping(before, after string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending != nil {
		h.pending.latest = after
		h.pending.timer.Reset(h.debounce)
		return
	}

	p := &pendingBurst{baseline: before, latest: after}
	p.timer = time.AfterFunc(h.debounce, func() { h.expire(p) })
	h.pending = p
}

// expire commits a typing burst when its debounce timer fires.
func (h *History) expire(p *pendingBurst) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// A stale fire: the burst was cancelled or replaced after the timer
	// went off but before we took the lock.
	if h.pending != p {
		return
	}

	h.pending = nil
	h.undoStack = pushCapped(h.undoStack, p.baseline, h.maxEntries)
	h.redoStack = nil
	h.lastCommitted = p.latest
}

// FlushPending commits any in-progress typing burst immediately. Used before
// operations that must observe a settled history, such as saving state.
func (h *History) FlushPending() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending != nil {
		h.flushPendingLocked(h.pending.latest)
	}
}

// flushPendingLocked commits a pending burst as if its timer had expired,
// with asOf as the post-burst text.
func (h *History) flushPendingLocked(asOf string) {
	if h.pending == nil {
		return
	}
	h.pending.timer.Stop()
	h.undoStack = pushCapped(h.undoStack, h.pending.baseline, h.maxEntries)
	h.lastCommitted = asOf
	h.pending = nil
}

// cancelPendingLocked discards a pending burst without committing it.
func (h *History) cancelPendingLocked() {
	if h.pending == nil {
		return
	}
	h.pending.timer.Stop()
	h.pending = nil
}

// Undo returns the snapshot the document should be restored to. If a typing
// burst is pending, the timer is cancelled, the in-progress text moves onto
// the redo stack, and the pre-burst baseline is restored without touching the
// undo stack. Otherwise the undo stack is popped. Returns false when there is
// nothing to undo.
func (h *History) Undo() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending != nil {
		p := h.pending
		p.timer.Stop()
		h.pending = nil
		h.redoStack = pushCapped(h.redoStack, p.latest, h.maxEntries)
		// The baseline is the last committed snapshot by construction, so
		// the pointer does not move.
		return p.baseline, true
	}

	if len(h.undoStack) == 0 {
		return "", false
	}

	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = pushCapped(h.redoStack, h.lastCommitted, h.maxEntries)
	h.lastCommitted = top
	return top, true
}

// Redo returns the snapshot the document should be restored to, or false when
// the redo stack is empty.
func (h *History) Redo() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return "", false
	}

	top := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = pushCapped(h.undoStack, h.lastCommitted, h.maxEntries)
	h.lastCommitted = top
	return top, true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending != nil || len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of committed undo entries.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo entries.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// HasPending returns true if a typing burst is awaiting its debounce commit.
func (h *History) HasPending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending != nil
}

// pushCapped appends a snapshot, deduplicating against the stack top and
// evicting the oldest entry when the cap is exceeded.
func pushCapped(stack []string, snapshot string, max int) []string {
	if len(stack) > 0 && stack[len(stack)-1] == snapshot {
		return stack
	}
	stack = append(stack, snapshot)
	if len(stack) > max {
		stack = stack[len(stack)-max:]
	}
	return stack
}
