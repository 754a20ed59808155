package layer

import (
	"github.com/mgreenly/ikigai/internal/reactive"
	"github.com/mgreenly/ikigai/internal/text"
)

// Candidate is a single completion suggestion: the resolved name plus its
// display description. The command-name vocabulary itself is an external
// collaborator (the slash-command parser); this layer only renders
// pre-resolved pairs.
type Candidate struct {
	Name        string
	Description string
}

// CompletionLayer renders the current slash-command completion list.
type CompletionLayer struct {
	candidates reactive.Accessor[[]Candidate]
	current    reactive.Accessor[int]
}

// NewCompletionLayer creates a completion layer. IsVisible reports true
// whenever candidates() is non-empty.
func NewCompletionLayer(candidates reactive.Accessor[[]Candidate], current reactive.Accessor[int]) *CompletionLayer {
	return &CompletionLayer{candidates: candidates, current: current}
}

func (l *CompletionLayer) IsVisible() bool {
	return len(l.candidates()) > 0
}

func (l *CompletionLayer) GetHeight(int) int {
	return len(l.candidates())
}

func (l *CompletionLayer) Render(output *[]byte, width int, startRow int, rowCount int) {
	cands := l.candidates()
	cur := l.current()
	end := startRow + rowCount
	if end > len(cands) {
		end = len(cands)
	}

	for i := startRow; i < end; i++ {
		c := cands[i]
		row := "  " + c.Name + "   " + c.Description
		visibleLen := len([]rune(row))
		if visibleLen > width {
			row = string([]rune(row)[:width])
			visibleLen = width
		}

		if i == cur {
			*output = append(*output, text.ReverseBold...)
			*output = append(*output, row...)
			*output = append(*output, text.ResetSGR...)
		} else {
			*output = append(*output, row...)
		}
		for pad := visibleLen; pad < width; pad++ {
			*output = append(*output, ' ')
		}
		*output = append(*output, text.ClearToEOL...)
		*output = append(*output, '\r', '\n')
	}
}
