package text

import "github.com/mattn/go-runewidth"

// CharWidth returns the display-column width of a single code point:
// 0 for combining/zero-width/control, 2 for wide/full-width, 1 otherwise.
func CharWidth(r rune) int {
	if r == '\n' || r == '\r' {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 1
	}
	return w
}

// DisplayWidth computes the display width of text, skipping CSI sequences
// (zero width) and newlines (zero width, handled separately by callers that
// care about line breaks). Invalid UTF-8 bytes are treated as one column
// each.
func DisplayWidth(b []byte) int {
	width := 0
	i := 0
	for i < len(b) {
		if n := SkipCSI(b, i); n > 0 {
			i += n
			continue
		}
		if b[i] == '\n' {
			i++
			continue
		}
		r, size := decodeRune(b[i:])
		if size <= 0 {
			width++
			i++
			continue
		}
		width += CharWidth(r)
		i += size
	}
	return width
}
