package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// RGB is a 24-bit color. The zero value means "terminal default"
// (transparent), not black.
type RGB struct {
	R, G, B uint8
}

// IsDefault reports whether the color is the unset/default sentinel
func (c RGB) IsDefault() bool {
	return c == RGB{}
}

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode and the alternate screen buffer
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// PollEvent blocks until next input event
	PollEvent() Event
}

// Event is a terminal input event: KeyEvent, ResizeEvent or CloseEvent
type Event interface{}

// KeyEvent represents a key press. Rune is zero for non-printable keys
type KeyEvent struct {
	Rune rune
}

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// CloseEvent signals the terminal is going away (interrupt, EOF)
type CloseEvent struct{}
