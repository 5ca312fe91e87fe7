package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/strotui/terminal"
)

// fakeChild records the regions the compositor hands it
type fakeChild struct {
	rows     int
	rendered []Region
}

func (f *fakeChild) Height(width int) (int, error) {
	return f.rows, nil
}

func (f *fakeChild) Render(r Region) error {
	f.rendered = append(f.rendered, r)
	return nil
}

func renderPanel(t *testing.T, p *Panel, w, h int) *terminal.Buffer {
	t.Helper()
	buf := terminal.NewBuffer(w, h)
	if err := p.Render(BufferRegion(buf)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf
}

func TestPanelSimpleTextLines(t *testing.T) {
	panel := NewPanel("Panel Test").
		Padding(PadSymmetric(0, 0)).
		AddText("Hello 1!").
		AddText("Hello 2!").
		AddText("Hello 3!").
		Build()

	buf := renderPanel(t, panel, 40, 12)

	// Border corners
	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'}, {39, 0, '┐'}, {0, 11, '└'}, {39, 11, '┘'},
	}
	for _, c := range corners {
		if got := buf.Get(c.x, c.y).Rune; got != c.want {
			t.Errorf("Corner (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}

	if top := bufRow(buf, 0); !strings.Contains(top, " Panel Test ") {
		t.Errorf("Expected title on top border, got %q", top)
	}

	// Zero padding: each text on its own row just inside the border
	for i, want := range []string{"Hello 1!", "Hello 2!", "Hello 3!"} {
		row := bufRow(buf, 1+i)
		if !strings.HasPrefix(row, "│"+want) {
			t.Errorf("Row %d: expected %q inside border, got %q", 1+i, want, row)
		}
	}

	// Scrollbar track in the rightmost column, inset one row at each
	// end, with no thumb since the content fits
	if got := buf.Get(39, 1).Rune; got != '↑' {
		t.Errorf("Expected ↑ cap at (39,1), got %q", got)
	}
	if got := buf.Get(39, 10).Rune; got != '↓' {
		t.Errorf("Expected ↓ cap at (39,10), got %q", got)
	}
	for y := 2; y <= 9; y++ {
		if got := buf.Get(39, y).Rune; got != '░' {
			t.Errorf("Expected bare track at (39,%d), got %q", y, got)
		}
	}
}

func TestPanelDefaultPadding(t *testing.T) {
	// A titled panel without explicit padding gets 2 columns, 1 row
	panel := NewPanel("Pad").
		AddText("content").
		Build()

	buf := renderPanel(t, panel, 20, 6)

	if got := bufRow(buf, 2); !strings.HasPrefix(got, "│  content") {
		t.Errorf("Expected padded content row, got %q", got)
	}
	// Top padding row holds no content
	if got := bufRow(buf, 1); strings.Contains(got, "content") {
		t.Errorf("Expected blank padding row, got %q", got)
	}
}

func TestPanelContentHeightUnclamped(t *testing.T) {
	children := []*fakeChild{{rows: 5}, {rows: 5}, {rows: 5}}
	builder := NewPanel("").Scrollbar(false)
	for _, c := range children {
		builder.AddChild(c)
	}
	panel := builder.Build()

	buf := terminal.NewBuffer(10, 6)
	if err := panel.Render(BufferRegion(buf)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// First child fits whole, second is clamped to the row left,
	// third starts past the bottom and is never rendered
	if len(children[0].rendered) != 1 || children[0].rendered[0].H != 5 {
		t.Errorf("Child 0: expected one render at full height, got %+v", children[0].rendered)
	}
	if len(children[1].rendered) != 1 || children[1].rendered[0].H != 1 {
		t.Errorf("Child 1: expected one render clamped to 1 row, got %+v", children[1].rendered)
	}
	if children[1].rendered[0].Y != 5 {
		t.Errorf("Child 1: expected y=5, got %d", children[1].rendered[0].Y)
	}
	if len(children[2].rendered) != 0 {
		t.Errorf("Child 2: expected no render beyond viewport, got %+v", children[2].rendered)
	}

	// Content height counts natural heights, not painted rows
	contentH, err := panel.ContentHeight(10)
	if err != nil {
		t.Fatalf("ContentHeight: %v", err)
	}
	if contentH != 15 {
		t.Errorf("Expected content height 15, got %d", contentH)
	}
}

func TestPanelScrollbarThumb(t *testing.T) {
	long := strings.Repeat("word ", 60)
	panel := NewPanel("Scroll").
		Padding(PadSymmetric(0, 0)).
		AddText(long).
		Build()

	buf := renderPanel(t, panel, 20, 8)

	// Content exceeds the viewport: the track must carry a thumb
	thumb := 0
	for y := 2; y <= 5; y++ {
		if buf.Get(19, y).Rune == '█' {
			thumb++
		}
	}
	if thumb == 0 {
		t.Error("Expected a thumb on the scrollbar track, found none")
	}
}

func TestPanelScrollbarOverflowMetric(t *testing.T) {
	tests := []struct {
		name     string
		contentH int
		viewport int
		want     int
	}{
		{"Content overflows", 15, 10, 5},
		{"Content fits exactly", 10, 10, 0},
		{"Content fits with room", 3, 10, 0},
		{"Empty content", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScrollState{ContentH: tt.contentH, ViewportH: tt.viewport}
			if got := s.Overflow(); got != tt.want {
				t.Errorf("Expected overflow %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPanelEmptyChildren(t *testing.T) {
	panel := NewPanel("Empty").Build()
	buf := renderPanel(t, panel, 20, 6)

	contentH, err := panel.ContentHeight(18)
	if err != nil {
		t.Fatalf("ContentHeight: %v", err)
	}
	if contentH != 0 {
		t.Errorf("Expected content height 0, got %d", contentH)
	}

	// Scrollbar track still drawn, no thumb
	if got := buf.Get(19, 1).Rune; got != '↑' {
		t.Errorf("Expected ↑ cap, got %q", got)
	}
	for y := 2; y <= 3; y++ {
		if got := buf.Get(19, y).Rune; got == '█' {
			t.Errorf("Expected no thumb at (19,%d)", y)
		}
	}
}

func TestPanelTinyRegions(t *testing.T) {
	// Regions smaller than the decoration clamp to a no-op render
	panel := NewPanel("Tiny").
		AddText("text that would wrap many times over").
		Build()

	for _, dim := range []struct{ w, h int }{{0, 0}, {1, 1}, {2, 1}, {1, 5}, {5, 2}} {
		buf := terminal.NewBuffer(dim.w, dim.h)
		if err := panel.Render(BufferRegion(buf)); err != nil {
			t.Errorf("Render into %dx%d: %v", dim.w, dim.h, err)
		}
	}
}

func TestPanelChildErrorPropagates(t *testing.T) {
	panel := NewPanel("Err").
		AddChild(NewTextWithPolicy("text", WrapJustified)).
		Build()

	buf := terminal.NewBuffer(20, 6)
	err := panel.Render(BufferRegion(buf))
	if !errors.Is(err, ErrUnimplementedPolicy) {
		t.Errorf("Expected ErrUnimplementedPolicy, got %v", err)
	}
}

func TestPanelChildOrder(t *testing.T) {
	first := &fakeChild{rows: 2}
	second := &fakeChild{rows: 3}
	panel := NewPanel("").Scrollbar(false).
		AddChild(first).
		AddChild(second).
		Build()

	buf := terminal.NewBuffer(10, 10)
	if err := panel.Render(BufferRegion(buf)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if first.rendered[0].Y != 0 {
		t.Errorf("Expected first child at y=0, got %d", first.rendered[0].Y)
	}
	if second.rendered[0].Y != 2 {
		t.Errorf("Expected second child stacked at y=2, got %d", second.rendered[0].Y)
	}
}

func TestPanelScrollOffset(t *testing.T) {
	above := &fakeChild{rows: 4}
	visible := &fakeChild{rows: 2}
	panel := NewPanel("").Scrollbar(false).ScrollOffset(4).
		AddChild(above).
		AddChild(visible).
		Build()

	buf := terminal.NewBuffer(10, 6)
	if err := panel.Render(BufferRegion(buf)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(above.rendered) != 0 {
		t.Errorf("Expected child above the offset to be clipped, got %+v", above.rendered)
	}
	if len(visible.rendered) != 1 || visible.rendered[0].Y != 0 {
		t.Errorf("Expected scrolled child at y=0, got %+v", visible.rendered)
	}
}

func TestPanelRenderIdempotent(t *testing.T) {
	panel := NewPanel("Again").
		AddText("Some wrapped content to draw twice.").
		Build()

	first := renderPanel(t, panel, 24, 8)
	second := renderPanel(t, panel, 24, 8)

	for y := 0; y < 8; y++ {
		a, b := bufRow(first, y), bufRow(second, y)
		if a != b {
			t.Errorf("Row %d differs between renders: %q vs %q", y, a, b)
		}
	}
}
