package layer

import (
	"strings"

	"github.com/mgreenly/ikigai/internal/text"
)

// Version is the banner's displayed version string.
var Version = "dev"

// BannerLayer renders the fixed 6-row startup banner.
type BannerLayer struct{}

// NewBannerLayer creates the banner layer. The banner is always visible and
// has a fixed height, so it carries no borrowed state.
func NewBannerLayer() *BannerLayer {
	return &BannerLayer{}
}

func (l *BannerLayer) IsVisible() bool   { return true }
func (l *BannerLayer) GetHeight(int) int { return 6 }

// Render emits whichever of the banner's 6 fixed rows fall within
// [startRow, startRow+rowCount), each independently guarded so arbitrary
// contiguous row ranges can be rendered.
func (l *BannerLayer) Render(output *[]byte, width int, startRow int, rowCount int) {
	end := startRow + rowCount
	row := func(n int, emit func()) {
		if n >= startRow && n < end {
			emit()
		}
	}

	border := strings.Repeat("═", width)

	row(0, func() {
		*output = append(*output, text.FgANSI256(245)...)
		*output = append(*output, border...)
		*output = append(*output, text.ResetSGR...)
		*output = append(*output, text.ClearToEOL...)
		*output = append(*output, '\r', '\n')
	})
	row(1, func() {
		*output = append(*output, text.FgANSI256(81)...)
		*output = append(*output, " ╭─╮╭─╮"...)
		*output = append(*output, text.ResetSGR...)
		*output = append(*output, text.ClearToEOL...)
		*output = append(*output, '\r', '\n')
	})
	row(2, func() {
		*output = append(*output, text.FgANSI256(211)...)
		*output = append(*output, '(')
		*output = append(*output, text.FgANSI256(81)...)
		*output = append(*output, "│"...)
		*output = append(*output, text.FgANSI256(214)...)
		*output = append(*output, "●"...)
		*output = append(*output, text.FgANSI256(81)...)
		*output = append(*output, "││"...)
		*output = append(*output, text.FgANSI256(214)...)
		*output = append(*output, "●"...)
		*output = append(*output, text.FgANSI256(81)...)
		*output = append(*output, "│"...)
		*output = append(*output, text.FgANSI256(211)...)
		*output = append(*output, ')')
		*output = append(*output, "    "...)
		*output = append(*output, text.FgANSI256(153)...)
		*output = append(*output, ("Ikigai v" + Version)...)
		*output = append(*output, text.ResetSGR...)
		*output = append(*output, text.ClearToEOL...)
		*output = append(*output, '\r', '\n')
	})
	row(3, func() {
		*output = append(*output, text.FgANSI256(81)...)
		*output = append(*output, " ╰─╯╰─╯"...)
		*output = append(*output, text.ResetSGR...)
		*output = append(*output, "     "...)
		*output = append(*output, text.FgANSI256(250)...)
		*output = append(*output, "Agentic Orchestration"...)
		*output = append(*output, text.ResetSGR...)
		*output = append(*output, text.ClearToEOL...)
		*output = append(*output, '\r', '\n')
	})
	row(4, func() {
		*output = append(*output, text.FgANSI256(211)...)
		*output = append(*output, "  ╰──╯"...)
		*output = append(*output, text.ResetSGR...)
		*output = append(*output, text.ClearToEOL...)
		*output = append(*output, '\r', '\n')
	})
	row(5, func() {
		*output = append(*output, text.FgANSI256(245)...)
		*output = append(*output, border...)
		*output = append(*output, text.ResetSGR...)
		*output = append(*output, text.ClearToEOL...)
		*output = append(*output, '\r', '\n')
	})
}
