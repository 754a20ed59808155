package layer

import (
	"github.com/mgreenly/ikigai/internal/scrollback"
	"github.com/mgreenly/ikigai/internal/text"
)

// ScrollbackLayer renders the transcript's visible physical-row window.
type ScrollbackLayer struct {
	sb *scrollback.Scrollback
}

// NewScrollbackLayer wraps sb for compositing. The layer borrows sb; it
// must not outlive the scrollback's owning session.
func NewScrollbackLayer(sb *scrollback.Scrollback) *ScrollbackLayer {
	return &ScrollbackLayer{sb: sb}
}

// IsVisible is always true: the scrollback is always part of the document.
func (l *ScrollbackLayer) IsVisible() bool { return true }

// GetHeight ensures layout at width and returns the total physical row
// count.
func (l *ScrollbackLayer) GetHeight(width int) int {
	l.sb.EnsureLayout(width)
	return l.sb.TotalPhysicalLines()
}

// Render streams the wrapped physical rows overlapping
// [startRow, startRow+rowCount), each terminated by a CRLF except the last
// one when the window ends in the middle of a wrapped logical line. A logical line
// that wraps into several physical rows is sliced to just the requested
// sub-rows, the same way wrapRows slices the input buffer.
func (l *ScrollbackLayer) Render(output *[]byte, width int, startRow int, rowCount int) {
	totalLines := l.sb.Count()
	if totalLines == 0 || rowCount == 0 {
		return
	}
	l.sb.EnsureLayout(width)

	endRow := startRow + rowCount
	startRes, err := l.sb.FindLogicalLineAtPhysicalRow(startRow)
	if err != nil {
		return
	}
	endLineIdx := totalLines - 1
	endRowOffsetInLine := l.sb.PhysicalLinesForLine(endLineIdx) - 1
	if endRes, err := l.sb.FindLogicalLineAtPhysicalRow(endRow - 1); err == nil {
		endLineIdx = endRes.LineIndex
		endRowOffsetInLine = endRes.RowOffsetInLine
	}

	for idx := startRes.LineIndex; idx <= endLineIdx; idx++ {
		lineText, err := l.sb.GetLineText(idx)
		if err != nil {
			continue
		}
		rows := wrapRows(lineText, width)

		lo := 0
		if idx == startRes.LineIndex {
			lo = startRes.RowOffsetInLine
		}
		hi := len(rows)
		if idx == endLineIdx {
			hi = endRowOffsetInLine + 1
		}
		for r := lo; r < hi && r < len(rows); r++ {
			*output = text.CopyWithCRLF(*output, rows[r])
			if idx == endLineIdx && r == hi-1 && hi < len(rows) {
				break
			}
			*output = append(*output, '\r', '\n')
		}
	}
}
