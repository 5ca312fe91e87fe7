// Package tui is a small immediate-mode widget layer: a text layout
// engine (wrapping/truncation under several policies) and a Panel
// container that stacks child widgets into a bounded viewport with a
// scroll indicator.
//
// Core abstraction is Region, a rectangular view into a cell buffer.
// All drawing operations are relative to region bounds with automatic
// clipping. Widgets hold no hidden render state; layout is recomputed
// per call, so text and panel values are safe to render from a single
// pass and to share read-only.
//
// Usage pattern:
//
//	buf := terminal.NewBuffer(w, h)
//	root := tui.BufferRegion(buf)
//
//	panel := tui.NewPanel("Status").
//		Padding(tui.PadSymmetric(0, 0)).
//		AddText("Hello 1!").
//		AddText("Hello 2!").
//		Build()
//	if err := panel.Render(root); err != nil { ... }
//
//	term.Flush(buf.Cells(), w, h)
package tui
