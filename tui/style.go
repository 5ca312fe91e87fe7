package tui

import "github.com/lixenwraith/strotui/terminal"

// Style carries paint attributes a widget passes through to the host
// uninterpreted. The zero value means terminal defaults.
type Style struct {
	Fg    terminal.RGB
	Bg    terminal.RGB
	Attrs terminal.Attr
}
