package layer

import (
	"unicode/utf8"

	"github.com/mgreenly/ikigai/internal/reactive"
	"github.com/mgreenly/ikigai/internal/text"
)

// InputLayer renders the live-edited input buffer text. Unlike the source's
// input layer wrapper (which ignored startRow/rowCount entirely), this
// implementation honors arbitrary partial-row rendering so the layer cake's
// viewport clipping behaves uniformly across every layer kind.
type InputLayer struct {
	textOf  reactive.Accessor[[]byte]
	visible reactive.Accessor[bool]
}

// NewInputLayer creates an input layer reading live text from textOf.
func NewInputLayer(textOf reactive.Accessor[[]byte], visible reactive.Accessor[bool]) *InputLayer {
	return &InputLayer{textOf: textOf, visible: visible}
}

func (l *InputLayer) IsVisible() bool { return l.visible() }

// GetHeight returns 1 for empty text (a blank editor still reserves cursor
// space), else the number of wrapped physical rows.
func (l *InputLayer) GetHeight(width int) int {
	buf := l.textOf()
	if len(buf) == 0 {
		return 1
	}
	_, physicalLines := text.SegmentLayout(buf, width)
	return physicalLines
}

// Render emits the rows of wrapped input text overlapping
// [startRow, startRow+rowCount), converting LF to CRLF.
func (l *InputLayer) Render(output *[]byte, width int, startRow int, rowCount int) {
	buf := l.textOf()
	rows := wrapRows(buf, width)
	if len(rows) == 0 {
		rows = [][]byte{{}}
	}

	end := startRow + rowCount
	if end > len(rows) {
		end = len(rows)
	}
	for i := startRow; i < end; i++ {
		*output = text.CopyWithCRLF(*output, rows[i])
		*output = append(*output, '\r', '\n')
	}
}

// wrapRows splits buf on LF and then re-wraps each segment at width using
// display-width accounting, matching the layout used by GetHeight.
func wrapRows(buf []byte, width int) [][]byte {
	var rows [][]byte
	seg := buf
	for {
		nl := indexByte(seg, '\n')
		var line []byte
		if nl == -1 {
			line = seg
		} else {
			line = seg[:nl]
		}
		rows = append(rows, wrapOneLine(line, width)...)
		if nl == -1 {
			break
		}
		seg = seg[nl+1:]
		if len(seg) == 0 {
			rows = append(rows, []byte{})
			break
		}
	}
	return rows
}

func wrapOneLine(line []byte, width int) [][]byte {
	if len(line) == 0 {
		return [][]byte{{}}
	}
	var out [][]byte
	col := 0
	start := 0
	i := 0
	for i < len(line) {
		if n := text.SkipCSI(line, i); n > 0 {
			i += n
			continue
		}
		r, size := utf8.DecodeRune(line[i:])
		if size <= 0 {
			size = 1
		}
		w := text.CharWidth(r)
		if col+w > width {
			out = append(out, line[start:i])
			start = i
			col = 0
		}
		col += w
		i += size
	}
	out = append(out, line[start:i])
	return out
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
