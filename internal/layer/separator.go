package layer

import (
	"strings"

	"github.com/mgreenly/ikigai/internal/reactive"
)

// SeparatorLayer renders a single horizontal rule.
type SeparatorLayer struct {
	visible reactive.Accessor[bool]
}

// NewSeparatorLayer creates a separator layer whose visibility is driven by
// visible.
func NewSeparatorLayer(visible reactive.Accessor[bool]) *SeparatorLayer {
	return &SeparatorLayer{visible: visible}
}

func (l *SeparatorLayer) IsVisible() bool        { return l.visible() }
func (l *SeparatorLayer) GetHeight(int) int      { return 1 }

// Render draws width copies of the box-drawing rule character.
func (l *SeparatorLayer) Render(output *[]byte, width int, startRow int, rowCount int) {
	if rowCount <= 0 {
		return
	}
	*output = append(*output, []byte(strings.Repeat("─", width))...)
	*output = append(*output, '\r', '\n')
}
