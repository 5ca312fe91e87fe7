package main

import (
	"flag"
	"log"

	"github.com/lixenwraith/strotui/terminal"
	"github.com/lixenwraith/strotui/tui"
)

// Colors
var (
	colorBorder = terminal.RGB{R: 120, G: 160, B: 220}
	colorText   = terminal.RGB{R: 200, G: 200, B: 200}
)

var (
	borderStyle string
	scrollbar   bool
	scrollRows  int
)

func init() {
	flag.StringVar(&borderStyle, "border", "single", "border style: single, double, rounded, heavy, none")
	flag.BoolVar(&scrollbar, "scrollbar", true, "draw the scroll indicator")
	flag.IntVar(&scrollRows, "scroll", 0, "initial scroll offset in rows")
}

func lineType(name string) tui.LineType {
	switch name {
	case "double":
		return tui.LineDouble
	case "rounded":
		return tui.LineRounded
	case "heavy":
		return tui.LineHeavy
	case "none":
		return tui.LineNone
	}
	return tui.LineSingle
}

func buildPanel(cache *tui.LayoutCache) *tui.Panel {
	long := "Let's make several strings that are longer than the width of the demo panel, so word wrapping has something to do."

	truncated := tui.NewTextWithPolicy(long, tui.WrapTruncateEllipsis)
	truncated.Style = tui.Style{Fg: colorText, Attrs: terminal.AttrDim}

	exact := tui.NewTextWithPolicy("Exact wrapping slices lines at the region width.\nNewlines end lines early.", tui.WrapExact)
	exact.Style = tui.Style{Fg: colorText}

	return tui.NewPanel("strotui demo").
		Border(lineType(borderStyle)).
		Scrollbar(scrollbar).
		ScrollOffset(scrollRows).
		Style(tui.Style{Fg: colorBorder}).
		Cache(cache).
		AddText("Hello 1!").
		AddText("Hello 2!").
		AddText("Hello 3!").
		AddChild(truncated).
		AddChild(exact).
		AddText(long).
		Build()
}

func main() {
	flag.Parse()

	term, err := terminal.NewTcell()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := term.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	defer term.Fini()

	cache, err := tui.NewLayoutCache(128)
	if err != nil {
		log.Fatalf("layout cache: %v", err)
	}
	panel := buildPanel(cache)

	w, h := term.Size()
	buf := terminal.NewBuffer(w, h)

	for {
		buf.Clear()
		if err := panel.Render(tui.BufferRegion(buf)); err != nil {
			term.Fini()
			log.Fatalf("render: %v", err)
		}
		term.Flush(buf.Cells(), buf.Width(), buf.Height())

		switch ev := term.PollEvent().(type) {
		case terminal.ResizeEvent:
			buf.Resize(ev.Width, ev.Height)
		case terminal.KeyEvent, terminal.CloseEvent:
			return
		}
	}
}
