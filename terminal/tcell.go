package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// tcellTerm implements Terminal on top of a tcell.Screen
type tcellTerm struct {
	screen tcell.Screen
}

// NewTcell creates a Terminal backed by tcell
func NewTcell() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellTerm{screen: screen}, nil
}

// NewTcellFromScreen wraps an existing screen, useful with
// tcell.NewSimulationScreen in tests
func NewTcellFromScreen(screen tcell.Screen) Terminal {
	return &tcellTerm{screen: screen}
}

func (t *tcellTerm) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

func (t *tcellTerm) Fini() {
	t.screen.Fini()
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx >= len(cells) {
				return
			}
			c := cells[idx]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			t.screen.SetContent(x, y, ch, nil, styleOf(c))
		}
	}
	t.screen.Show()
}

func (t *tcellTerm) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				return CloseEvent{}
			}
			return KeyEvent{Rune: ev.Rune()}
		case *tcell.EventResize:
			w, h := ev.Size()
			t.screen.Sync()
			return ResizeEvent{Width: w, Height: h}
		case nil:
			return CloseEvent{}
		}
	}
}

// styleOf maps a Cell's colors and attributes to a tcell style.
// Zero RGB keeps the terminal default.
func styleOf(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if !c.Fg.IsDefault() {
		st = st.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if !c.Bg.IsDefault() {
		st = st.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
