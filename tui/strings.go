package tui

import "github.com/mattn/go-runewidth"

// TruncateString truncates s with a … suffix if it exceeds maxW
// display columns
func TruncateString(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	out := make([]rune, 0, maxW)
	w := 0
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if w+cw > maxW-1 {
			break
		}
		out = append(out, ch)
		w += cw
	}
	return string(out) + "…"
}

// PadRight pads s with spaces to width display columns
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	out := make([]byte, 0, len(s)+width-w)
	out = append(out, s...)
	for i := w; i < width; i++ {
		out = append(out, ' ')
	}
	return string(out)
}
