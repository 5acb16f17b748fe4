// Package selection defines the selection value type used by the editing
// engine. A Selection is a pair of rune offsets into the document; when
// Anchor == Head it represents a caret with no extent.
package selection

import "fmt"

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current caret position.
// Selection is an immutable value type.
type Selection struct {
	Anchor int
	Head   int
}

// New creates a selection from anchor to head.
func New(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// Caret creates a selection representing just a caret (no extent).
func Caret(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// IsCaret returns true if the selection has no extent.
func (s Selection) IsCaret() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// Len returns the length of the selection in runes.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Normalize returns a forward selection (anchor <= head).
func (s Selection) Normalize() Selection {
	if s.Anchor <= s.Head {
		return s
	}
	return Selection{Anchor: s.Head, Head: s.Anchor}
}

// Clamp returns a selection restricted to the range [0, maxOffset].
func (s Selection) Clamp(maxOffset int) Selection {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > maxOffset {
			return maxOffset
		}
		return v
	}
	return Selection{Anchor: clamp(s.Anchor), Head: clamp(s.Head)}
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsCaret() {
		return fmt.Sprintf("Caret(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d..%d)", s.Anchor, s.Head)
}
