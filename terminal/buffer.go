package terminal

// Buffer owns a row-major cell grid for one render pass.
// Not safe for concurrent mutation; exactly one render pass
// is expected to own it for its duration.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Cells returns the backing slice, row-major: cells[y*width + x]
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// Width returns buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Clear resets every cell to a space with default colors
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
	}
}

// Resize reallocates the grid for new dimensions and clears it
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.Clear()
}

// Get returns the cell at (x, y), or a zero Cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}
