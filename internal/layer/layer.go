// Package layer implements the compositing "layer cake": an ordered stack
// of independently visible, independently sized layers composed into a
// single viewport-clipped frame.
package layer

// Layer is the capability set every layer kind implements.
type Layer interface {
	// IsVisible is consulted fresh every frame; never cached by the cake.
	IsVisible() bool
	// GetHeight returns the layer's physical row count at the given
	// terminal width when visible.
	GetHeight(width int) int
	// Render emits rows [startRow, startRow+rowCount) into output, in
	// terminal-ready form (CRLF line endings).
	Render(output *[]byte, width int, startRow int, rowCount int)
}

// Cake is an ordered stack of layers composed top-to-bottom.
type Cake struct {
	layers         []Layer
	ViewportRow    int
	ViewportHeight int
}

// NewCake creates an empty layer cake.
func NewCake() *Cake {
	return &Cake{}
}

// Add appends a layer to the bottom of the ordering (last in Render order
// is visually lowest on screen, matching "top of list = top of screen").
func (c *Cake) Add(l Layer) {
	c.layers = append(c.layers, l)
}

// TotalHeight sums GetHeight over every currently visible layer at width.
func (c *Cake) TotalHeight(width int) int {
	total := 0
	for _, l := range c.layers {
		if l.IsVisible() {
			total += l.GetHeight(width)
		}
	}
	return total
}

// Render composes the visible, viewport-intersecting slice of every layer
// into output, following the clipping algorithm: a layer is skipped
// entirely if its row range does not intersect the viewport; otherwise its
// start row and row count are clipped to the intersection before Render is
// called.
func (c *Cake) Render(output *[]byte, width int) {
	viewportEnd := c.ViewportRow + c.ViewportHeight
	offset := 0

	for _, l := range c.layers {
		if !l.IsVisible() {
			continue
		}
		h := l.GetHeight(width)
		layerEnd := offset + h

		if layerEnd > c.ViewportRow && offset < viewportEnd {
			startRow := 0
			if offset < c.ViewportRow {
				startRow = c.ViewportRow - offset
			}
			rowCount := h - startRow
			if layerEnd > viewportEnd {
				rowCount -= layerEnd - viewportEnd
			}
			if rowCount > 0 {
				l.Render(output, width, startRow, rowCount)
			}
		}

		offset = layerEnd
		if offset >= viewportEnd {
			break
		}
	}
}
