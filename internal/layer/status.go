package layer

import (
	"strings"

	"github.com/mgreenly/ikigai/internal/reactive"
	"github.com/mgreenly/ikigai/internal/text"
)

// StatusLayer renders a 2-row footer: a separator rule followed by a
// model/thinking-level pill.
type StatusLayer struct {
	visible       reactive.Accessor[bool]
	model         reactive.Accessor[string]
	thinkingLevel reactive.Accessor[string]
}

// NewStatusLayer creates a status layer reading model/thinking state from
// the given accessors.
func NewStatusLayer(visible reactive.Accessor[bool], model reactive.Accessor[string], thinkingLevel reactive.Accessor[string]) *StatusLayer {
	return &StatusLayer{visible: visible, model: model, thinkingLevel: thinkingLevel}
}

func (l *StatusLayer) IsVisible() bool   { return l.visible() }
func (l *StatusLayer) GetHeight(int) int { return 2 }

func (l *StatusLayer) Render(output *[]byte, width int, startRow int, rowCount int) {
	end := startRow + rowCount

	if startRow <= 0 && end > 0 {
		*output = append(*output, strings.Repeat("─", width)...)
		*output = append(*output, '\r', '\n')
	}
	if startRow <= 1 && end > 1 {
		model := l.model()
		label := "(no model)"
		if model != "" {
			label = model + "/" + l.thinkingLevel()
		}
		*output = append(*output, "🤖 "...)
		*output = append(*output, text.FgANSI256(153)...)
		*output = append(*output, label...)
		*output = append(*output, text.ResetSGR...)
		*output = append(*output, text.ClearToEOL...)
		*output = append(*output, '\r', '\n')
	}
}
