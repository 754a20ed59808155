// Package input implements the editable input buffer: a UTF-8 byte store
// paired with a dual byte/grapheme cursor and multi-line wrapped layout.
package input

import (
	"unicode/utf8"

	"github.com/mgreenly/ikigai/internal/text"
)

// Buffer is the editor's live text and cursor state.
type Buffer struct {
	text          []byte
	cursor        Cursor
	targetColumn  int
	cachedWidth   int
	displayWidth  int
	physicalLines int
}

// New creates an empty input buffer.
func New() *Buffer {
	return &Buffer{}
}

// Text returns the current editor content. The returned slice is borrowed;
// callers must not retain it past the next mutation.
func (b *Buffer) Text() []byte {
	return b.text
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Cursor {
	return b.cursor
}

func (b *Buffer) invalidateLayout() {
	b.cachedWidth = 0
}

// InsertRune inserts a single code point at the cursor and advances it past
// the inserted bytes. The grapheme offset is recounted, so a combining mark
// that joins the preceding cluster does not add a grapheme.
func (b *Buffer) InsertRune(r rune) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	b.insertBytes(enc[:n])
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.insertBytes([]byte{'\n'})
}

func (b *Buffer) insertBytes(ins []byte) {
	pos := b.cursor.ByteOffset
	grown := make([]byte, 0, len(b.text)+len(ins))
	grown = append(grown, b.text[:pos]...)
	grown = append(grown, ins...)
	grown = append(grown, b.text[pos:]...)
	b.text = grown

	b.cursor.ByteOffset += len(ins)
	b.cursor.GraphemeOffset = countGraphemesUpTo(b.text, b.cursor.ByteOffset)
	b.targetColumn = -1
	b.invalidateLayout()
}

// Backspace deletes the grapheme cluster ending at the cursor.
func (b *Buffer) Backspace() {
	if b.cursor.ByteOffset == 0 {
		return
	}
	end := b.cursor.ByteOffset
	left := Cursor{ByteOffset: end, GraphemeOffset: b.cursor.GraphemeOffset}
	left.MoveLeft(b.text)
	start := left.ByteOffset

	b.text = append(b.text[:start], b.text[end:]...)
	b.cursor.ByteOffset = start
	if b.cursor.GraphemeOffset > 0 {
		b.cursor.GraphemeOffset--
	}
	b.targetColumn = -1
	b.invalidateLayout()
}

// Delete deletes the grapheme cluster starting at the cursor.
func (b *Buffer) Delete() {
	if b.cursor.ByteOffset >= len(b.text) {
		return
	}
	start := b.cursor.ByteOffset
	right := Cursor{ByteOffset: start, GraphemeOffset: b.cursor.GraphemeOffset}
	right.MoveRight(b.text)
	end := right.ByteOffset

	b.text = append(b.text[:start], b.text[end:]...)
	b.targetColumn = -1
	b.invalidateLayout()
}

// MoveLeft moves the cursor one grapheme cluster to the left.
func (b *Buffer) MoveLeft() {
	b.cursor.MoveLeft(b.text)
	b.targetColumn = -1
}

// MoveRight moves the cursor one grapheme cluster to the right.
func (b *Buffer) MoveRight() {
	b.cursor.MoveRight(b.text)
	b.targetColumn = -1
}

// SetPosition moves the cursor to an explicit byte offset.
func (b *Buffer) SetPosition(byteOffset int) {
	b.cursor.SetPosition(b.text, byteOffset)
	b.targetColumn = -1
}

// EnsureLayout recomputes wrapped-line layout for width, reusing the cached
// result when width has not changed.
func (b *Buffer) EnsureLayout(width int) {
	if width == b.cachedWidth && b.cachedWidth != 0 {
		return
	}
	b.displayWidth, b.physicalLines = text.SegmentLayout(b.text, width)
	b.cachedWidth = width
}

// PhysicalLines returns the number of wrapped physical rows at the last
// width EnsureLayout was called with.
func (b *Buffer) PhysicalLines() int {
	if len(b.text) == 0 {
		return 1
	}
	return b.physicalLines
}

// Submit returns the current text and resets the buffer to empty, matching
// the "cleared on submission" lifecycle rule.
func (b *Buffer) Submit() string {
	s := string(b.text)
	b.text = nil
	b.cursor = Cursor{}
	b.targetColumn = -1
	b.invalidateLayout()
	return s
}

// MoveUp moves the cursor up one physical row, preserving target_column
// across consecutive vertical moves.
func (b *Buffer) MoveUp(width int) {
	b.moveVertical(width, -1)
}

// MoveDown moves the cursor down one physical row, preserving target_column
// across consecutive vertical moves.
func (b *Buffer) MoveDown(width int) {
	b.moveVertical(width, 1)
}

func (b *Buffer) moveVertical(width int, dir int) {
	rows := wrapPhysicalRows(b.text, width)
	curRow, curCol := physicalRowColumnOf(b.text, rows, b.cursor.ByteOffset)

	if b.targetColumn < 0 {
		b.targetColumn = curCol
	}

	destRow := curRow + dir
	if destRow < 0 || destRow >= len(rows) {
		return
	}

	offset := byteOffsetAtRowColumn(b.text, rows, destRow, b.targetColumn)
	b.cursor.SetPosition(b.text, offset)
}

// physicalRow is one wrapped row's byte range within the buffer.
type physicalRow struct {
	start, end int // byte offsets into buf; end is exclusive and excludes a separating LF
}

// wrapPhysicalRows segments buf into the same width-wrapped physical rows
// EnsureLayout counts, splitting on LF and re-wrapping each segment at
// width, so vertical movement lands on the rows actually displayed rather
// than on raw LF-delimited lines.
func wrapPhysicalRows(buf []byte, width int) []physicalRow {
	var rows []physicalRow
	segStart := 0
	for {
		nl := indexByteFrom(buf, segStart, '\n')
		segEnd := nl
		if nl == -1 {
			segEnd = len(buf)
		}
		rows = append(rows, wrapOneSegment(buf, segStart, segEnd, width)...)
		if nl == -1 {
			break
		}
		segStart = nl + 1
		if segStart == len(buf) {
			rows = append(rows, physicalRow{start: segStart, end: segStart})
			break
		}
	}
	if len(rows) == 0 {
		rows = append(rows, physicalRow{})
	}
	return rows
}

func wrapOneSegment(buf []byte, start, end int, width int) []physicalRow {
	if start == end {
		return []physicalRow{{start: start, end: end}}
	}
	var out []physicalRow
	col := 0
	rowStart := start
	i := start
	for i < end {
		if n := text.SkipCSI(buf, i); n > 0 {
			i += n
			continue
		}
		r, size := utf8.DecodeRune(buf[i:end])
		if size <= 0 {
			size = 1
		}
		w := text.CharWidth(r)
		if col+w > width {
			out = append(out, physicalRow{start: rowStart, end: i})
			rowStart = i
			col = 0
		}
		col += w
		i += size
	}
	out = append(out, physicalRow{start: rowStart, end: i})
	return out
}

func indexByteFrom(buf []byte, from int, c byte) int {
	for i := from; i < len(buf); i++ {
		if buf[i] == c {
			return i
		}
	}
	return -1
}

// physicalRowColumnOf locates which wrapped row byteOffset falls in and its
// display column within that row. A byteOffset sitting exactly on a pure
// wrap boundary (no separating LF) belongs to the following row, matching
// where a cursor lands after wrapping past the end of a row; a byteOffset
// at the end of an LF-terminated row stays on that row.
func physicalRowColumnOf(buf []byte, rows []physicalRow, byteOffset int) (row, col int) {
	for ri, r := range rows {
		if byteOffset < r.end {
			return ri, text.DisplayWidth(buf[r.start:byteOffset])
		}
		if byteOffset == r.end {
			isLast := ri == len(rows)-1
			gapAfter := !isLast && rows[ri+1].start != r.end
			if isLast || gapAfter {
				return ri, text.DisplayWidth(buf[r.start:byteOffset])
			}
		}
	}
	last := len(rows) - 1
	return last, text.DisplayWidth(buf[rows[last].start:byteOffset])
}

// byteOffsetAtRowColumn returns the byte offset within row reached after
// accumulating col display columns, clamped to the row's own byte range.
func byteOffsetAtRowColumn(buf []byte, rows []physicalRow, row int, col int) int {
	r := rows[row]

	acc := 0
	i := r.start
	for i < r.end {
		if n := text.SkipCSI(buf, i); n > 0 {
			i += n
			continue
		}
		rn, size := utf8.DecodeRune(buf[i:r.end])
		if size <= 0 {
			size = 1
		}
		w := text.CharWidth(rn)
		if acc+w > col {
			break
		}
		acc += w
		i += size
	}
	return i
}
