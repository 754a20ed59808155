package text

import "github.com/clipperhouse/uax29/v2/graphemes"

// GraphemeBreak reports whether a grapheme cluster boundary exists between
// prev and r, per UAX #29. prevValid is false at the start of text (no
// preceding code point), which is always a boundary.
func GraphemeBreak(prev rune, prevValid bool, r rune) bool {
	if !prevValid {
		return true
	}
	pair := string(prev) + string(r)
	tokens := graphemes.FromString(pair)
	count := 0
	for tokens.Next() {
		count++
		if count > 1 {
			return true
		}
	}
	return count > 1
}

// CountGraphemes returns the number of grapheme clusters in s.
func CountGraphemes(s string) int {
	count := 0
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		count++
	}
	return count
}

// GraphemeBoundaries returns the byte offsets of every grapheme cluster
// boundary in s, in ascending order, not including 0 but including len(s).
func GraphemeBoundaries(s string) []int {
	var bounds []int
	tokens := graphemes.FromString(s)
	offset := 0
	for tokens.Next() {
		offset += len(tokens.Value())
		bounds = append(bounds, offset)
	}
	return bounds
}
