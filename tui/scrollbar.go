package tui

import "github.com/lixenwraith/strotui/terminal"

// Scrollbar glyphs
const (
	scrollUp    = '↑'
	scrollDown  = '↓'
	scrollThumb = '█'
	scrollTrack = '░'
)

// ScrollBar draws a vertical scroll indicator in column x of the
// region: ↑/↓ caps with a track between them. The thumb is sized
// proportionally to the visible share of the content and positioned
// from the scroll offset. No thumb is drawn when content fits.
func ScrollBar(r Region, x int, state ScrollState, fg terminal.RGB) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}

	state = state.Clamped()

	r.Cell(x, 0, scrollUp, fg, terminal.RGB{}, terminal.AttrDim)
	r.Cell(x, r.H-1, scrollDown, fg, terminal.RGB{}, terminal.AttrDim)

	trackH := r.H - 2
	if trackH < 1 {
		return
	}

	if state.Overflow() == 0 {
		// Content fits: bare track, no thumb
		for y := 0; y < trackH; y++ {
			r.Cell(x, y+1, scrollTrack, fg, terminal.RGB{}, terminal.AttrDim)
		}
		return
	}

	thumbH := (state.ViewportH * trackH) / state.ContentH
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	thumbY := 0
	if maxScroll := state.MaxOffset(); maxScroll > 0 {
		thumbY = (state.Offset * (trackH - thumbH)) / maxScroll
	}
	if thumbY < 0 {
		thumbY = 0
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	for y := 0; y < trackH; y++ {
		ch := scrollTrack
		if y >= thumbY && y < thumbY+thumbH {
			ch = scrollThumb
		}
		r.Cell(x, y+1, ch, fg, terminal.RGB{}, terminal.AttrNone)
	}
}
