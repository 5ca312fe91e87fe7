package tui

// ellipsis replaces the last columns of an exactly-full truncated line
const ellipsis = "..."

// Text displays a string truncated or wrapped to the width it is
// rendered at. The string and policy are fixed at construction; the
// layout is recomputed on every height or render query, so each query
// is independently consistent with the width it was given.
type Text struct {
	// Style is passed through to the host for every painted line
	Style Style

	text   string
	policy WrapPolicy
}

// NewText creates a word-wrapped text widget
func NewText(text string) *Text {
	return &Text{text: text, policy: WrapWords}
}

// NewTextWithPolicy creates a text widget with an explicit wrap policy
func NewTextWithPolicy(text string, policy WrapPolicy) *Text {
	return &Text{text: text, policy: policy}
}

// Content returns the source string
func (t *Text) Content() string {
	return t.text
}

// Policy returns the wrap policy
func (t *Text) Policy() WrapPolicy {
	return t.policy
}

// Height returns the number of rows the text needs at the given width
func (t *Text) Height(width int) (int, error) {
	return ComputeHeight(t.text, width, t.policy)
}

// HeightCached is Height through a shared layout cache
func (t *Text) HeightCached(width int, cache *LayoutCache) (int, error) {
	lines, err := cache.Lines(t.text, width, t.policy)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// Render lays the text out at the region's width and paints one line
// per row from the region's top, clipped to the region bounds
func (t *Text) Render(r Region) error {
	lines, err := ComputeLines(t.text, r.W, t.policy)
	if err != nil {
		return err
	}
	t.paint(r, lines)
	return nil
}

// RenderCached is Render through a shared layout cache
func (t *Text) RenderCached(r Region, cache *LayoutCache) error {
	lines, err := cache.Lines(t.text, r.W, t.policy)
	if err != nil {
		return err
	}
	t.paint(r, lines)
	return nil
}

func (t *Text) paint(r Region, lines []Line) {
	// Ellipsis substitution happens at paint time, decoupled from
	// layout: only when the single truncated line exactly fills the
	// width. A line shorter than the width is never ellipsized, even
	// if the source was cut to produce it.
	if t.policy == WrapTruncateEllipsis && len(lines) == 1 &&
		r.W >= len(ellipsis) && lines[0].Len() == r.W {
		line := lines[0].Of(t.text)
		cut := floorBoundary(line, r.W-len(ellipsis))
		r.Text(0, 0, line[:cut], t.Style.Fg, t.Style.Bg, t.Style.Attrs)
		r.Text(r.W-len(ellipsis), 0, ellipsis, t.Style.Fg, t.Style.Bg, t.Style.Attrs)
		return
	}

	for i, line := range lines {
		if i >= r.H {
			break
		}
		r.Text(0, i, line.Of(t.text), t.Style.Fg, t.Style.Bg, t.Style.Attrs)
	}
}
