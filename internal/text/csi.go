// Package text provides grapheme, display-width, and ANSI CSI primitives
// shared by the input editor, scrollback, and renderer.
package text

import "fmt"

// SkipCSI returns the number of bytes occupied by a CSI sequence starting at
// pos, or 0 if the bytes there do not form a complete, valid sequence.
func SkipCSI(b []byte, pos int) int {
	if pos+1 >= len(b) || b[pos] != 0x1b || b[pos+1] != '[' {
		return 0
	}
	i := pos + 2
	for i < len(b) {
		c := b[i]
		switch {
		case c >= 0x30 && c <= 0x3f: // parameter byte
			i++
		case c >= 0x20 && c <= 0x2f: // intermediate byte
			i++
		case c >= 0x40 && c <= 0x7e: // final byte
			return i + 1 - pos
		default:
			return 0
		}
	}
	return 0
}

// FgANSI256 formats a 256-color foreground escape sequence.
func FgANSI256(color uint8) string {
	return fmt.Sprintf("\x1b[38;5;%dm", color)
}

// ResetSGR is the "reset all attributes" escape.
const ResetSGR = "\x1b[0m"

// ReverseBold is the completion-selection highlight escape.
const ReverseBold = "\x1b[7;1m"

// ClearToEOL clears from the cursor to the end of the current line.
const ClearToEOL = "\x1b[K"
