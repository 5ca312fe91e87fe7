package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WrapPolicy selects the line-breaking strategy for a Text widget
type WrapPolicy uint8

const (
	// WrapTruncate emits a single line cut at the region width
	WrapTruncate WrapPolicy = iota
	// WrapTruncateEllipsis truncates like WrapTruncate; the renderer
	// substitutes an ellipsis when the line exactly fills the width
	WrapTruncateEllipsis
	// WrapExact slices fixed-width lines with no regard for words
	WrapExact
	// WrapWords breaks greedily at word boundaries (default)
	WrapWords
	// Reserved policies. Layout fails with ErrUnimplementedPolicy
	WrapJustified
	WrapCentered
	WrapRightAligned
)

func (p WrapPolicy) String() string {
	switch p {
	case WrapTruncate:
		return "truncate"
	case WrapTruncateEllipsis:
		return "truncate-ellipsis"
	case WrapExact:
		return "wrap-exact"
	case WrapWords:
		return "wrap-words"
	case WrapJustified:
		return "wrap-justified"
	case WrapCentered:
		return "wrap-centered"
	case WrapRightAligned:
		return "wrap-right-aligned"
	}
	return fmt.Sprintf("wrap-policy(%d)", uint8(p))
}

// Line is one display row: a byte range into the source string.
// A line never splits a multi-byte rune of the source.
type Line struct {
	Start, End int
}

// Of returns the line's substring of text
func (l Line) Of(text string) string {
	return text[l.Start:l.End]
}

// Len returns the line length in bytes
func (l Line) Len() int {
	return l.End - l.Start
}

// ComputeLines lays text out at the given width under a policy.
// Results are deterministic for identical inputs; no state is kept
// between calls.
//
// Width 0 is defined, not an error: truncation yields one empty line,
// the wrapping policies yield no lines. A width narrower than a single
// rune's byte length emits that rune whole rather than splitting it.
func ComputeLines(text string, width int, policy WrapPolicy) ([]Line, error) {
	if width < 0 {
		width = 0
	}
	switch policy {
	case WrapTruncate, WrapTruncateEllipsis:
		return truncateLines(text, width), nil
	case WrapExact:
		return exactLines(text, width), nil
	case WrapWords:
		return wordLines(text, width), nil
	case WrapJustified, WrapCentered, WrapRightAligned:
		return nil, fmt.Errorf("%w: %s", ErrUnimplementedPolicy, policy)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, uint8(policy))
}

// ComputeHeight returns the number of lines ComputeLines would produce
func ComputeHeight(text string, width int, policy WrapPolicy) (int, error) {
	lines, err := ComputeLines(text, width, policy)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// windowEnd returns the end of the scan window starting at pos:
// pos+width capped at the text length, moved left onto a rune
// boundary. When that would make no progress the whole rune at pos is
// taken instead, so wrap loops always advance.
func windowEnd(text string, pos, width int) int {
	if width <= 0 {
		return pos
	}
	end := pos + width
	if end >= len(text) {
		return len(text)
	}
	for end > pos && !utf8.RuneStart(text[end]) {
		end--
	}
	if end == pos {
		_, n := utf8.DecodeRuneInString(text[pos:])
		end = pos + n
	}
	return end
}

// truncateLines emits exactly one line: the leading window of the
// text. Embedded newlines are not special-cased; multi-paragraph input
// truncates the same as a single line.
func truncateLines(text string, width int) []Line {
	return []Line{{Start: 0, End: windowEnd(text, 0, width)}}
}

// exactLines slices fixed-width lines. A newline inside the window
// ends the line early; the newline itself is consumed and never
// emitted.
func exactLines(text string, width int) []Line {
	var lines []Line
	pos := 0
	for pos < len(text) {
		end := windowEnd(text, pos, width)
		if end == pos {
			break
		}
		if i := strings.IndexByte(text[pos:end], '\n'); i >= 0 {
			lines = append(lines, Line{Start: pos, End: pos + i})
			pos += i + 1
			continue
		}
		lines = append(lines, Line{Start: pos, End: end})
		pos = end
	}
	return lines
}

// wordLines breaks greedily at word boundaries. The break point is
// the window end when the window reaches end-of-text or the next byte
// is a space; otherwise the last space inside the window; otherwise a
// hard break at the window end (long unbroken words are cut one
// window at a time). A newline inside the window wins over the word
// break. Spaces following a taken line are consumed, not emitted.
func wordLines(text string, width int) []Line {
	var lines []Line
	pos := 0
	for pos < len(text) {
		end := windowEnd(text, pos, width)
		if end == pos {
			break
		}
		window := text[pos:end]

		to := end
		if end != len(text) && text[end] != ' ' {
			if i := strings.LastIndexByte(window, ' '); i >= 0 {
				to = pos + i
			}
		}

		if i := strings.IndexByte(window, '\n'); i >= 0 {
			lines = append(lines, Line{Start: pos, End: pos + i})
			pos += i + 1
			continue
		}

		lines = append(lines, Line{Start: pos, End: to})
		pos = to
		for pos < len(text) && text[pos] == ' ' {
			pos++
		}
	}
	return lines
}

// floorBoundary moves end left onto a rune boundary of text
func floorBoundary(text string, end int) int {
	if end < 0 {
		return 0
	}
	if end > len(text) {
		return len(text)
	}
	for end > 0 && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return end
}
