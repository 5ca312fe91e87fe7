package tui

import (
	"strings"
	"testing"

	"github.com/lixenwraith/strotui/terminal"
)

func bufRow(b *terminal.Buffer, y int) string {
	var sb strings.Builder
	for x := 0; x < b.Width(); x++ {
		sb.WriteRune(b.Get(x, y).Rune)
	}
	return sb.String()
}

func renderText(t *testing.T, text *Text, w, h int) *terminal.Buffer {
	t.Helper()
	buf := terminal.NewBuffer(w, h)
	if err := text.Render(BufferRegion(buf)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf
}

func TestTextRenderSingleLine(t *testing.T) {
	buf := renderText(t, NewText("Hello, world!"), 13, 1)
	if got := bufRow(buf, 0); got != "Hello, world!" {
		t.Errorf("Expected row %q, got %q", "Hello, world!", got)
	}
}

func TestTextRenderWraps(t *testing.T) {
	text := NewText("String that is longer than the 40 characters of the rectangle.")
	buf := renderText(t, text, 40, 3)

	wantRows := []string{
		"String that is longer than the 40",
		"characters of the rectangle.",
		"",
	}
	for y, want := range wantRows {
		got := strings.TrimRight(bufRow(buf, y), " ")
		if got != want {
			t.Errorf("Row %d: expected %q, got %q", y, want, got)
		}
	}
}

func TestTextRenderClipsAtViewportBottom(t *testing.T) {
	text := NewTextWithPolicy("aabbccdd", WrapExact)
	buf := terminal.NewBuffer(2, 4)
	region := BufferRegion(buf).Sub(0, 0, 2, 2)
	if err := text.Render(region); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := bufRow(buf, 0); got != "aa" {
		t.Errorf("Row 0: expected %q, got %q", "aa", got)
	}
	if got := bufRow(buf, 1); got != "bb" {
		t.Errorf("Row 1: expected %q, got %q", "bb", got)
	}
	// Rows beyond the region are computed but never painted
	for y := 2; y < 4; y++ {
		if got := strings.TrimRight(bufRow(buf, y), " "); got != "" {
			t.Errorf("Row %d: expected blank, got %q", y, got)
		}
	}
}

func TestTextEllipsis(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"Line exactly fills width", "1234567890", 10, "1234567..."},
		{"Truncated line fills width", "12345678901234", 10, "1234567..."},
		{"Shorter than width never ellipsized", "123456789", 10, "123456789 "},
		{"Word-sized text untouched", "Hi", 10, "Hi        "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := NewTextWithPolicy(tt.text, WrapTruncateEllipsis)
			buf := renderText(t, text, tt.width, 1)
			if got := bufRow(buf, 0); got != tt.want {
				t.Errorf("Expected row %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTextEllipsisNarrowRegion(t *testing.T) {
	// Region narrower than the marker: plain truncation, no substitution
	text := NewTextWithPolicy("abcdef", WrapTruncateEllipsis)
	buf := renderText(t, text, 2, 1)
	if got := bufRow(buf, 0); got != "ab" {
		t.Errorf("Expected row %q, got %q", "ab", got)
	}
}

func TestTextReservedPolicyRenderFails(t *testing.T) {
	text := NewTextWithPolicy("abc", WrapCentered)
	buf := terminal.NewBuffer(10, 1)
	if err := text.Render(BufferRegion(buf)); err == nil {
		t.Error("Expected error rendering reserved policy, got nil")
	}
	if _, err := text.Height(10); err == nil {
		t.Error("Expected error from Height on reserved policy, got nil")
	}
}

func TestTextHeight(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		policy WrapPolicy
		width  int
		want   int
	}{
		{"Single line", "Hello", WrapWords, 10, 1},
		{"Truncate is always one row", "a\nb\nc\nd", WrapTruncate, 3, 1},
		{"Exact slices", "abcdef", WrapExact, 2, 3},
		{"Words with newline", "Hello darkness\nmy old friend", WrapWords, 20, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := NewTextWithPolicy(tt.text, tt.policy)
			got, err := text.Height(tt.width)
			if err != nil {
				t.Fatalf("Height: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected height %d, got %d", tt.want, got)
			}
		})
	}
}
