package text

import "unicode/utf8"

// decodeRune decodes the first rune in b, returning (rune, 0) if b starts
// with invalid UTF-8 so callers can fall back to one-byte-one-column.
func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return r, 0
	}
	return r, size
}
