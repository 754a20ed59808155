package layer

import (
	"fmt"

	"github.com/mgreenly/ikigai/internal/reactive"
	"github.com/mgreenly/ikigai/internal/text"
)

// SpinnerFrames is the Braille frame set used to animate the waiting
// indicator, canonicalized on Braille rather than the ASCII |/-\ variant.
var SpinnerFrames = []rune{
	'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏',
}

// SpinnerLayer renders a single-row "waiting" indicator.
type SpinnerLayer struct {
	visible reactive.Accessor[bool]
	frame   reactive.Accessor[int]
	label   string
}

// NewSpinnerLayer creates a spinner layer with the given waiting label.
func NewSpinnerLayer(visible reactive.Accessor[bool], frame reactive.Accessor[int], label string) *SpinnerLayer {
	return &SpinnerLayer{visible: visible, frame: frame, label: label}
}

func (l *SpinnerLayer) IsVisible() bool   { return l.visible() }
func (l *SpinnerLayer) GetHeight(int) int { return 1 }

func (l *SpinnerLayer) Render(output *[]byte, width int, startRow int, rowCount int) {
	if rowCount <= 0 {
		return
	}
	f := SpinnerFrames[l.frame()%len(SpinnerFrames)]
	line := fmt.Sprintf("[%c] %s", f, l.label)
	*output = append(*output, line...)
	*output = append(*output, text.ClearToEOL...)
	*output = append(*output, '\r', '\n')
}

// AdvanceSpinner returns the next frame index, cycling modulo the frame
// count.
func AdvanceSpinner(current int) int {
	return (current + 1) % len(SpinnerFrames)
}
