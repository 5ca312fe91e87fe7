// Package terminal provides the cell-level host surface the widget
// layer paints into: Cell/RGB/Attr value types, a row-major Buffer,
// and a Terminal abstraction with a tcell-backed implementation.
//
// The widget layer (package tui) never talks to the physical terminal
// directly. It writes cells into a caller-owned buffer; the host
// decides when and how those cells reach a screen.
//
// Usage pattern:
//
//	term, err := terminal.NewTcell()
//	if err != nil { ... }
//	if err := term.Init(); err != nil { ... }
//	defer term.Fini()
//
//	w, h := term.Size()
//	buf := terminal.NewBuffer(w, h)
//	// ... paint via tui.Region ...
//	term.Flush(buf.Cells(), w, h)
package terminal
