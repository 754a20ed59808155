package input

import (
	"unicode/utf8"

	"github.com/mgreenly/ikigai/internal/text"
)

// Cursor tracks a position in UTF-8 text by both byte offset and grapheme
// cluster offset. The two are always kept consistent by the operations in
// this file.
type Cursor struct {
	ByteOffset     int
	GraphemeOffset int
}

// SetPosition moves the cursor to byteOffset, recounting grapheme
// boundaries from the start of text.
func (c *Cursor) SetPosition(buf []byte, byteOffset int) {
	c.ByteOffset = byteOffset
	c.GraphemeOffset = countGraphemesUpTo(buf, byteOffset)
}

func countGraphemesUpTo(buf []byte, limit int) int {
	count := 0
	prevValid := false
	var prev rune
	pos := 0
	for pos < limit {
		r, size := utf8.DecodeRune(buf[pos:])
		if size <= 0 {
			size = 1
		}
		if text.GraphemeBreak(prev, prevValid, r) {
			count++
		}
		prev = r
		prevValid = true
		pos += size
	}
	return count
}

// MoveLeft moves the cursor to the grapheme boundary immediately before its
// current byte offset. No-op if already at the start.
func (c *Cursor) MoveLeft(buf []byte) {
	if c.ByteOffset == 0 {
		return
	}

	lastBoundary := 0
	graphemeCount := 0
	prevValid := false
	var prev rune
	pos := 0

	for pos < c.ByteOffset {
		r, size := utf8.DecodeRune(buf[pos:])
		if size <= 0 {
			size = 1
		}
		if text.GraphemeBreak(prev, prevValid, r) {
			lastBoundary = pos
			graphemeCount++
		}
		prev = r
		prevValid = true
		pos += size
	}

	c.ByteOffset = lastBoundary
	if c.GraphemeOffset > 0 {
		c.GraphemeOffset--
	}
}

// MoveRight moves the cursor to the grapheme boundary immediately after its
// current byte offset. No-op if already at the end.
func (c *Cursor) MoveRight(buf []byte) {
	if c.ByteOffset >= len(buf) {
		return
	}

	pos := c.ByteOffset
	prevValid := false
	var prev rune
	found := -1

	for pos < len(buf) {
		r, size := utf8.DecodeRune(buf[pos:])
		if size <= 0 {
			size = 1
		}
		if prevValid && text.GraphemeBreak(prev, prevValid, r) {
			found = pos
			break
		}
		prev = r
		prevValid = true
		pos += size
	}

	if found == -1 {
		// No boundary found before end of text: fall back to the running
		// scan position, not len(buf) directly. Provably equal for
		// well-formed UTF-8, which the input buffer always maintains.
		found = pos
	}

	c.ByteOffset = found
	c.GraphemeOffset++
}
