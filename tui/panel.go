package tui

// Child is anything a panel can stack: it reports how many rows it
// needs at a width and renders itself into a region. New widget kinds
// implement Child without touching the compositor.
type Child interface {
	Height(width int) (int, error)
	Render(r Region) error
}

// cachedChild is implemented by children that can reuse a shared
// layout cache across the height and render passes
type cachedChild interface {
	HeightCached(width int, cache *LayoutCache) (int, error)
	RenderCached(r Region, cache *LayoutCache) error
}

// PanelBuilder assembles a Panel. Children keep insertion order.
type PanelBuilder struct {
	title     string
	border    LineType
	borderSet bool
	padding   Padding
	padSet    bool
	scrollbar bool
	style     Style
	offset    int
	cache     *LayoutCache
	children  []Child
}

// NewPanel starts a builder. A non-empty title implies a framed panel
// with a single-line border and symmetric 2x1 padding unless
// overridden. The scrollbar defaults to on.
func NewPanel(title string) *PanelBuilder {
	return &PanelBuilder{title: title, scrollbar: true}
}

// Border sets the frame's box drawing style and enables the frame
// even without a title
func (b *PanelBuilder) Border(line LineType) *PanelBuilder {
	b.border = line
	b.borderSet = true
	return b
}

// Padding overrides the interior padding inside the frame
func (b *PanelBuilder) Padding(p Padding) *PanelBuilder {
	b.padding = p
	b.padSet = true
	return b
}

// Scrollbar toggles the vertical scroll indicator
func (b *PanelBuilder) Scrollbar(on bool) *PanelBuilder {
	b.scrollbar = on
	return b
}

// Style sets the frame and scrollbar paint style
func (b *PanelBuilder) Style(s Style) *PanelBuilder {
	b.style = s
	return b
}

// ScrollOffset sets the initial row bias of the stacking pass.
// Children entirely above the offset are clipped. Offset zero is the
// default; nothing updates it during render.
func (b *PanelBuilder) ScrollOffset(rows int) *PanelBuilder {
	b.offset = rows
	return b
}

// Cache attaches a layout cache shared by the height and render passes
func (b *PanelBuilder) Cache(c *LayoutCache) *PanelBuilder {
	b.cache = c
	return b
}

// AddChild appends a child widget
func (b *PanelBuilder) AddChild(c Child) *PanelBuilder {
	b.children = append(b.children, c)
	return b
}

// AddText appends a word-wrapped Text child
func (b *PanelBuilder) AddText(text string) *PanelBuilder {
	return b.AddChild(NewText(text))
}

// Build creates the panel. The builder's defaults are resolved here:
// a framed panel without explicit padding gets 2 columns and 1 row
// per side.
func (b *PanelBuilder) Build() *Panel {
	framed := b.title != "" || b.borderSet
	padding := b.padding
	if framed && !b.padSet {
		padding = PadSymmetric(2, 1)
	}
	return &Panel{
		title:     b.title,
		border:    b.border,
		framed:    framed,
		padding:   padding,
		scrollbar: b.scrollbar,
		style:     b.style,
		offset:    b.offset,
		cache:     b.cache,
		children:  b.children,
	}
}

// Panel stacks child widgets top-to-bottom inside an optional
// titled frame, clips them at the viewport and draws a scroll
// indicator sized from the unclamped content height.
type Panel struct {
	title     string
	border    LineType
	framed    bool
	padding   Padding
	scrollbar bool
	style     Style
	offset    int
	cache     *LayoutCache
	children  []Child
}

// Render paints the panel into the region: frame, children, scrollbar.
// Child layout errors (reserved wrap policies) abort the pass and
// propagate unchanged.
func (p *Panel) Render(r Region) error {
	inner := p.renderFrame(r)

	contentH, err := p.renderChildren(inner)
	if err != nil {
		return err
	}

	p.renderScrollbar(r, ScrollState{
		ContentH:  contentH,
		ViewportH: inner.H,
		Offset:    p.offset,
	})
	return nil
}

// ContentHeight returns the total rows the children need at the given
// width: the sum of natural heights, independent of any viewport
func (p *Panel) ContentHeight(width int) (int, error) {
	total := 0
	for _, child := range p.children {
		h, err := p.childHeight(child, width)
		if err != nil {
			return 0, err
		}
		total += h
	}
	return total, nil
}

// renderFrame draws the decoration and returns the content region.
// A region too small for the frame clamps to zero size rather than
// underflowing.
func (p *Panel) renderFrame(r Region) Region {
	if !p.framed {
		return r
	}
	inner := r.TitledBox(p.title, p.border, p.style.Fg)
	return inner.Sub(
		p.padding.Left,
		p.padding.Top,
		inner.W-p.padding.Left-p.padding.Right,
		inner.H-p.padding.Top-p.padding.Bottom,
	)
}

// renderChildren stacks children with a running y cursor. A child's
// painted height is clamped to the rows left in the viewport, but the
// cursor advances by its natural height, so the return value is the
// total content height whether or not everything fit.
func (p *Panel) renderChildren(r Region) (int, error) {
	contentH := 0
	for _, child := range p.children {
		h, err := p.childHeight(child, r.W)
		if err != nil {
			return 0, err
		}

		y := contentH - p.offset
		if y >= 0 && y <= r.H {
			clamped := h
			if rem := r.H - y; clamped > rem {
				clamped = rem
			}
			if clamped < 0 {
				clamped = 0
			}
			if err := p.renderChild(child, r.Sub(0, y, r.W, clamped)); err != nil {
				return 0, err
			}
		}

		contentH += h
	}
	return contentH, nil
}

// renderScrollbar draws the indicator in the rightmost column of the
// outer region, inset one row from the top and bottom
func (p *Panel) renderScrollbar(r Region, state ScrollState) {
	if !p.scrollbar {
		return
	}
	track := r.Sub(0, 1, r.W, r.H-2)
	ScrollBar(track, track.W-1, state, p.style.Fg)
}

func (p *Panel) childHeight(child Child, width int) (int, error) {
	if p.cache != nil {
		if cc, ok := child.(cachedChild); ok {
			return cc.HeightCached(width, p.cache)
		}
	}
	return child.Height(width)
}

func (p *Panel) renderChild(child Child, r Region) error {
	if p.cache != nil {
		if cc, ok := child.(cachedChild); ok {
			return cc.RenderCached(r, p.cache)
		}
	}
	return child.Render(r)
}
