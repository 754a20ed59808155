// Package render implements the direct-draw combined frame renderer: the
// canonical, tested path that composes scrollback and input buffer into a
// single atomic TTY write.
package render

import (
	"unicode/utf8"

	"github.com/mgreenly/ikigai/internal/ikerr"
	"github.com/mgreenly/ikigai/internal/text"
)

// ScreenPosition is a terminal row/column pair, both zero-based.
type ScreenPosition struct {
	Row int
	Col int
}

// CursorScreenPosition simulates rendering text up to cursorByteOffset and
// returns the resulting screen position, wrapping at termWidth the same way
// the renderer itself wraps. Invalid UTF-8 inside the prefix is reported as
// InvalidArg, the one place in the core that can recover from malformed
// input rather than defensively treating it as one byte/one column.
func CursorScreenPosition(text_ []byte, cursorByteOffset int, termWidth int) (ScreenPosition, error) {
	row, col := 0, 0
	pos := 0

	for pos < cursorByteOffset {
		if text_[pos] == '\n' {
			row++
			col = 0
			pos++
			continue
		}
		if n := text.SkipCSI(text_, pos); n > 0 {
			pos += n
			continue
		}
		r, size := utf8.DecodeRune(text_[pos:])
		if r == utf8.RuneError && size <= 1 {
			return ScreenPosition{}, ikerr.New(ikerr.InvalidArg, "invalid UTF-8 at byte offset %d", pos)
		}
		w := text.CharWidth(r)
		if col+w > termWidth {
			row++
			col = 0
		}
		col += w
		pos += size
	}

	if col == termWidth {
		row++
		col = 0
	}

	return ScreenPosition{Row: row, Col: col}, nil
}
