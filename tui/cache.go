package tui

import lru "github.com/hashicorp/golang-lru/v2"

// layoutKey identifies one layout result: the computation is pure, so
// identical inputs always produce identical lines
type layoutKey struct {
	text   string
	width  int
	policy WrapPolicy
}

// LayoutCache memoizes ComputeLines results so a panel's height pass
// and render pass don't lay the same text out twice in one frame.
// Results are byte-identical with and without a cache. Like the rest
// of the layer it assumes a single render pass owns it at a time.
type LayoutCache struct {
	entries *lru.Cache[layoutKey, []Line]
}

// NewLayoutCache creates a cache holding up to size layout results
func NewLayoutCache(size int) (*LayoutCache, error) {
	entries, err := lru.New[layoutKey, []Line](size)
	if err != nil {
		return nil, err
	}
	return &LayoutCache{entries: entries}, nil
}

// Lines returns the memoized layout for (text, width, policy),
// computing and storing it on a miss. Reserved-policy errors are
// never cached.
func (c *LayoutCache) Lines(text string, width int, policy WrapPolicy) ([]Line, error) {
	key := layoutKey{text: text, width: width, policy: policy}
	if lines, ok := c.entries.Get(key); ok {
		return lines, nil
	}
	lines, err := ComputeLines(text, width, policy)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, lines)
	return lines, nil
}

// Purge drops all cached layouts
func (c *LayoutCache) Purge() {
	c.entries.Purge()
}
