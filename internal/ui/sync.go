package ui

import "math"

// Surface identifies which pane initiated a scroll.
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceEdit
	SurfacePreview
)

func (s Surface) String() string {
	switch s {
	case SurfaceEdit:
		return "edit"
	case SurfacePreview:
		return "preview"
	default:
		return "none"
	}
}

// Synchronizer keeps the edit and preview viewports at the same proportional
// scroll position. When one surface scrolls, the other is set to the same
// fraction of its own scroll range.
//
// The origin field is the reentrancy guard: it records which surface started
// the current sync. While set, scroll events from the other surface are
// ignored, so the follower's induced scroll cannot bounce back. Tick clears
// the guard on the next redraw.
type Synchronizer struct {
	edit    *Viewport
	preview *Viewport
	origin  Surface
}

// NewSynchronizer wires the two viewports together.
func NewSynchronizer(edit, preview *Viewport) *Synchronizer {
	s := &Synchronizer{edit: edit, preview: preview}
	edit.OnScroll(func(int) { s.scrolled(SurfaceEdit) })
	preview.OnScroll(func(int) { s.scrolled(SurfacePreview) })
	return s
}

// Tick clears the reentrancy guard. The owner calls this once per redraw.
func (s *Synchronizer) Tick() {
	s.origin = SurfaceNone
}

// Origin reports which surface, if any, initiated the sync in flight.
func (s *Synchronizer) Origin() Surface {
	return s.origin
}

func (s *Synchronizer) scrolled(from Surface) {
	if s.origin != SurfaceNone && s.origin != from {
		return
	}
	s.origin = from

	src, dst := s.edit, s.preview
	if from == SurfacePreview {
		src, dst = s.preview, s.edit
	}
	dst.SetScrollTop(follow(src, dst))
}

// follow maps src's scroll position onto dst's range proportionally. A source
// that cannot scroll maps to the top.
func follow(src, dst *Viewport) int {
	srcMax := src.MaxScroll()
	if srcMax <= 0 {
		return 0
	}
	frac := float64(src.ScrollTop()) / float64(srcMax)
	return int(math.Round(frac * float64(dst.MaxScroll())))
}
