package history

import (
	"fmt"
	"testing"
	"time"
)

const testDebounce = 25 * time.Millisecond

func newTestHistory(initial string) *History {
	return New(initial, WithDebounce(testDebounce))
}

func waitForCommit(t *testing.T, h *History) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.HasPending() {
		if time.Now().After(deadline) {
			t.Fatal("pending burst never committed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestCommitAndUndo(t *testing.T) {
	h := newTestHistory("one")
	h.Commit("one", "two")

	got, ok := h.Undo()
	if !ok || got != "one" {
		t.Errorf("Undo = (%q, %v), want (one, true)", got, ok)
	}

	got, ok = h.Redo()
	if !ok || got != "two" {
		t.Errorf("Redo = (%q, %v), want (two, true)", got, ok)
	}
}

func TestUndoEmptyIsNoop(t *testing.T) {
	h := newTestHistory("")
	if _, ok := h.Undo(); ok {
		t.Error("undo on empty history should report false")
	}
	if _, ok := h.Redo(); ok {
		t.Error("redo on empty history should report false")
	}
}

func TestCommitClearsRedo(t *testing.T) {
	h := newTestHistory("a")
	h.Commit("a", "b")
	if _, ok := h.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if !h.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	h.Commit("a", "c")
	if h.CanRedo() {
		t.Error("commit should clear the redo stack")
	}
}

func TestTypingCoalescing(t *testing.T) {
	h := newTestHistory("")

	// Three rapid keystrokes within the debounce window.
	h.RecordTyping("", "a")
	h.RecordTyping("a", "ab")
	h.RecordTyping("ab", "abc")

	if h.UndoCount() != 0 {
		t.Fatalf("burst committed early: %d entries", h.UndoCount())
	}

	waitForCommit(t, h)

	if h.UndoCount() != 1 {
		t.Fatalf("UndoCount = %d, want exactly 1", h.UndoCount())
	}
	got, ok := h.Undo()
	if !ok || got != "" {
		t.Errorf("Undo = (%q, %v), want pre-burst snapshot", got, ok)
	}
}

func TestUndoDuringActiveTyping(t *testing.T) {
	h := newTestHistory("base")
	h.Commit("base", "committed")

	h.RecordTyping("committed", "committeda")
	h.RecordTyping("committeda", "committedab")
	h.RecordTyping("committedab", "committedabc")

	got, ok := h.Undo()
	if !ok || got != "committed" {
		t.Fatalf("Undo = (%q, %v), want pre-burst text", got, ok)
	}
	if h.UndoCount() != 1 {
		t.Errorf("undo stack touched during burst undo: %d entries", h.UndoCount())
	}
	if h.RedoCount() != 1 {
		t.Errorf("RedoCount = %d, want 1", h.RedoCount())
	}

	got, ok = h.Redo()
	if !ok || got != "committedabc" {
		t.Errorf("Redo = (%q, %v), want in-progress text", got, ok)
	}

	// The timer must have been cancelled: nothing else commits.
	time.Sleep(3 * testDebounce)
	if h.UndoCount() != 2 {
		// Redo pushed "committed" back onto the undo stack; the burst must not
		// have added a third entry.
		t.Errorf("UndoCount = %d after redo, want 2", h.UndoCount())
	}
}

func TestDirectCommandFlushesBurst(t *testing.T) {
	h := newTestHistory("")
	h.RecordTyping("", "x")

	// A toggle arrives before the debounce expires.
	h.Commit("x", "**x**")

	if h.UndoCount() != 2 {
		t.Fatalf("UndoCount = %d, want 2 (burst baseline + command snapshot)", h.UndoCount())
	}

	got, _ := h.Undo()
	if got != "x" {
		t.Errorf("first undo = %q, want pre-command text", got)
	}
	got, _ = h.Undo()
	if got != "" {
		t.Errorf("second undo = %q, want pre-burst text", got)
	}
}

func TestDepthBound(t *testing.T) {
	h := newTestHistory("s0")
	for i := 1; i <= 250; i++ {
		h.Commit(fmt.Sprintf("s%d", i-1), fmt.Sprintf("s%d", i))
	}

	if h.UndoCount() != 200 {
		t.Fatalf("UndoCount = %d, want 200", h.UndoCount())
	}

	// The oldest 50 snapshots were evicted: undoing everything bottoms out
	// at s50, not s0.
	var last string
	for {
		got, ok := h.Undo()
		if !ok {
			break
		}
		last = got
	}
	if last != "s50" {
		t.Errorf("deepest undo = %q, want s50", last)
	}
}

func TestDeduplication(t *testing.T) {
	h := newTestHistory("same")
	h.Commit("same", "same2")
	h.Commit("same2", "same3")
	// An identical snapshot never lands twice in a row.
	h.Commit("same2", "same3")
	if h.UndoCount() != 2 {
		t.Errorf("UndoCount = %d, want 2 (duplicate top suppressed)", h.UndoCount())
	}
}

func TestReset(t *testing.T) {
	h := newTestHistory("a")
	h.Commit("a", "b")
	h.RecordTyping("b", "bc")

	h.Reset("fresh")

	if h.CanUndo() || h.CanRedo() {
		t.Error("reset should clear both stacks and the pending burst")
	}

	time.Sleep(3 * testDebounce)
	if h.UndoCount() != 0 {
		t.Error("cancelled burst committed after reset")
	}
}

func TestFlushPending(t *testing.T) {
	h := newTestHistory("")
	h.RecordTyping("", "a")
	h.FlushPending()
	if h.UndoCount() != 1 {
		t.Errorf("UndoCount = %d, want 1", h.UndoCount())
	}
	if h.HasPending() {
		t.Error("flush left a pending burst")
	}
}
