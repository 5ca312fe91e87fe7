package tui

// ScrollState is row-based scroll geometry derived per render pass:
// total content height, visible viewport height, and a row offset.
// The panel compositor builds one each frame; nothing stores it.
type ScrollState struct {
	ContentH  int // Total content height in rows
	ViewportH int // Visible viewport height
	Offset    int // Row offset from top of content
}

// Overflow returns the rows of content beyond the viewport, never negative
func (s ScrollState) Overflow() int {
	overflow := s.ContentH - s.ViewportH
	if overflow < 0 {
		return 0
	}
	return overflow
}

// CanScroll returns true if content exceeds viewport
func (s ScrollState) CanScroll() bool {
	return s.ContentH > s.ViewportH
}

// MaxOffset returns maximum valid scroll offset
func (s ScrollState) MaxOffset() int {
	return s.Overflow()
}

// Clamped returns the state with the offset forced into valid range
func (s ScrollState) Clamped() ScrollState {
	if s.Offset > s.MaxOffset() {
		s.Offset = s.MaxOffset()
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
	return s
}

// AtTop returns true if scrolled to top
func (s ScrollState) AtTop() bool {
	return s.Offset == 0
}

// AtBottom returns true if the last content row is visible
func (s ScrollState) AtBottom() bool {
	return s.Offset >= s.MaxOffset()
}
