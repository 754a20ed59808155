// Package scrollback implements the append-only transcript store: a packed
// byte buffer of logical lines with a width-dependent physical-row layout
// cache.
package scrollback

import (
	"unicode/utf8"

	"github.com/mgreenly/ikigai/internal/ikerr"
	"github.com/mgreenly/ikigai/internal/text"
)

type layout struct {
	displayWidth  int
	physicalLines int
}

// Scrollback is an append-only log of logical lines.
type Scrollback struct {
	textBuffer []byte
	offsets    []int
	lengths    []int
	layouts    []layout

	cachedWidth        int
	totalPhysicalLines int
}

// New creates a Scrollback laid out for the given terminal width. Panics if
// width is not positive, matching the source's assertion.
func New(width int) *Scrollback {
	if width <= 0 {
		panic("scrollback: width must be positive")
	}
	return &Scrollback{cachedWidth: width}
}

// Count returns the number of logical lines.
func (s *Scrollback) Count() int {
	return len(s.offsets)
}

// TotalPhysicalLines returns the sum of every line's physical row count at
// the current cached width.
func (s *Scrollback) TotalPhysicalLines() int {
	return s.totalPhysicalLines
}

// AppendLine appends a new logical line, computing its layout at the
// current cached width immediately (the append-time layout computation is
// segment-aware; see EnsureLayout for the width-change path, which is not).
func (s *Scrollback) AppendLine(lineText []byte) {
	offset := len(s.textBuffer)
	// The packed buffer retains a NUL terminator per line to mirror the
	// documented C layout exactly, even though Go slices carry their own
	// length.
	s.textBuffer = append(s.textBuffer, lineText...)
	s.textBuffer = append(s.textBuffer, 0)

	s.offsets = append(s.offsets, offset)
	s.lengths = append(s.lengths, len(lineText))

	dw, pl := text.SegmentLayout(lineText, s.cachedWidth)
	s.layouts = append(s.layouts, layout{displayWidth: dw, physicalLines: pl})
	s.totalPhysicalLines += pl
}

// EnsureLayout recomputes physical_lines for every line when width differs
// from the cached width. This is pure arithmetic on the cached display
// width, not a re-scan of the underlying text, so recomputation is
// O(count), not O(bytes). It intentionally does not re-derive per-LF-segment
// rows, which diverges from AppendLine's own computation for multi-line
// entries (see DESIGN.md) and is preserved as-is.
func (s *Scrollback) EnsureLayout(width int) {
	if width == s.cachedWidth {
		return
	}
	total := 0
	for i := range s.layouts {
		pl := text.RecomputePhysicalLines(s.layouts[i].displayWidth, width)
		s.layouts[i].physicalLines = pl
		total += pl
	}
	s.cachedWidth = width
	s.totalPhysicalLines = total
}

// GetLineText returns the borrowed byte range of logical line i, excluding
// its NUL terminator.
func (s *Scrollback) GetLineText(i int) ([]byte, error) {
	if i < 0 || i >= len(s.offsets) {
		return nil, ikerr.New(ikerr.OutOfRange, "line index %d out of range [0,%d)", i, len(s.offsets))
	}
	off := s.offsets[i]
	ln := s.lengths[i]
	return s.textBuffer[off : off+ln], nil
}

// LogicalRowResolution is the result of locating a physical row.
type LogicalRowResolution struct {
	LineIndex        int
	RowOffsetInLine  int
}

// FindLogicalLineAtPhysicalRow locates the logical line containing physical
// row, and that row's offset within the line's own wrapped rows.
func (s *Scrollback) FindLogicalLineAtPhysicalRow(row int) (LogicalRowResolution, error) {
	if row < 0 || row >= s.totalPhysicalLines {
		return LogicalRowResolution{}, ikerr.New(ikerr.OutOfRange, "physical row %d out of range [0,%d)", row, s.totalPhysicalLines)
	}
	acc := 0
	for i, l := range s.layouts {
		if row < acc+l.physicalLines {
			return LogicalRowResolution{LineIndex: i, RowOffsetInLine: row - acc}, nil
		}
		acc += l.physicalLines
	}
	return LogicalRowResolution{}, ikerr.New(ikerr.OutOfRange, "physical row %d out of range", row)
}

// ByteOffsetAtDisplayColumn walks a logical line's UTF-8 text accumulating
// display columns, skipping CSI sequences, and returns the byte offset at
// which the accumulated column reaches col. Trailing CSI sequences at the
// result position are consumed so the returned offset never sits inside an
// escape sequence.
func ByteOffsetAtDisplayColumn(line []byte, col int) int {
	if col <= 0 {
		return 0
	}
	acc := 0
	i := 0
	for i < len(line) {
		if n := text.SkipCSI(line, i); n > 0 {
			i += n
			continue
		}
		if acc >= col {
			break
		}
		r, size := utf8.DecodeRune(line[i:])
		if r == utf8.RuneError && size <= 1 {
			size = 1
			acc++
		} else {
			acc += text.CharWidth(r)
		}
		i += size
	}
	for {
		if n := text.SkipCSI(line, i); n > 0 {
			i += n
			continue
		}
		break
	}
	return i
}

// PhysicalLinesForLine returns the wrapped physical row count for logical
// line i at the current cached width.
func (s *Scrollback) PhysicalLinesForLine(i int) int {
	if i < 0 || i >= len(s.layouts) {
		return 0
	}
	return s.layouts[i].physicalLines
}

// Clear resets the scrollback to empty while preserving allocated capacity.
func (s *Scrollback) Clear() {
	s.textBuffer = s.textBuffer[:0]
	s.offsets = s.offsets[:0]
	s.lengths = s.lengths[:0]
	s.layouts = s.layouts[:0]
	s.totalPhysicalLines = 0
}
