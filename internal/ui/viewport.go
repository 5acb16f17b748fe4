// Package ui provides the dual-pane terminal surface: an editable Markdown
// pane and a derived rendered view, kept in step by a proportional scroll
// synchronizer.
package ui

// Viewport models one independently scrollable surface with an integer
// scroll position. maxScroll is contentHeight - height, floored at zero;
// scrollTop is always within [0, maxScroll].
type Viewport struct {
	scrollTop     int
	contentHeight int
	height        int

	listeners []func(top int)
}

// NewViewport creates a viewport with the given visible height.
func NewViewport(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{height: height}
}

// OnScroll registers a listener invoked whenever the scroll position changes.
func (v *Viewport) OnScroll(fn func(top int)) {
	v.listeners = append(v.listeners, fn)
}

// Height returns the visible height.
func (v *Viewport) Height() int { return v.height }

// ScrollTop returns the current scroll position.
func (v *Viewport) ScrollTop() int { return v.scrollTop }

// MaxScroll returns the largest valid scroll position.
func (v *Viewport) MaxScroll() int {
	max := v.contentHeight - v.height
	if max < 0 {
		return 0
	}
	return max
}

// SetHeight resizes the viewport, re-clamping the scroll position.
func (v *Viewport) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
	v.clamp()
}

// SetContentHeight updates the scrollable content size, re-clamping the
// scroll position.
func (v *Viewport) SetContentHeight(h int) {
	if h < 0 {
		h = 0
	}
	v.contentHeight = h
	v.clamp()
}

// SetScrollTop moves the scroll position, clamped to the valid range.
// Listeners fire only when the position actually changes; setting a scroll
// position is itself a scroll event, which is what the synchronizer's
// reentrancy guard exists to contain.
func (v *Viewport) SetScrollTop(top int) {
	if top < 0 {
		top = 0
	}
	if max := v.MaxScroll(); top > max {
		top = max
	}
	if top == v.scrollTop {
		return
	}
	v.scrollTop = top
	for _, fn := range v.listeners {
		fn(top)
	}
}

// ScrollBy moves the scroll position by delta lines.
func (v *Viewport) ScrollBy(delta int) {
	v.SetScrollTop(v.scrollTop + delta)
}

// EnsureVisible scrolls minimally so that the given content line is on
// screen.
func (v *Viewport) EnsureVisible(line int) {
	if line < v.scrollTop {
		v.SetScrollTop(line)
		return
	}
	if line >= v.scrollTop+v.height {
		v.SetScrollTop(line - v.height + 1)
	}
}

func (v *Viewport) clamp() {
	if max := v.MaxScroll(); v.scrollTop > max {
		v.scrollTop = max
	}
}
