package render

import (
	"strconv"
	"strings"

	"github.com/mgreenly/ikigai/internal/ikerr"
	"github.com/mgreenly/ikigai/internal/scrollback"
	"github.com/mgreenly/ikigai/internal/text"
)

// Envelope bytes shared by every frame, direct-draw or layer-cake.
const (
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	homeCursor  = "\x1b[H"
)

// CombinedParams bundles the direct-draw renderer's inputs.
type CombinedParams struct {
	Scrollback         *scrollback.Scrollback
	ScrollbackStart    int
	ScrollbackCount    int
	InputText          []byte
	InputCursorByte    int
	SeparatorVisible   bool
	InputVisible       bool
	Width              int
}

// RenderCombined composes scrollback lines, an optional separator, and the
// input buffer into a single frame, writing clear/hide/home, the content,
// and a cursor-visibility/position trailer, exactly once. This is the
// canonical, REPL-hot-path rendering function.
func RenderCombined(p CombinedParams) ([]byte, error) {
	if p.Width <= 0 {
		return nil, ikerr.New(ikerr.InvalidArg, "width must be positive")
	}
	if p.Scrollback != nil {
		p.Scrollback.EnsureLayout(p.Width)
	}

	out := make([]byte, 0, 256+len(p.InputText)*2)
	out = append(out, clearScreen...)
	out = append(out, hideCursor...)
	out = append(out, homeCursor...)

	if p.Scrollback != nil {
		total := p.Scrollback.Count()
		end := p.ScrollbackStart + p.ScrollbackCount
		if end > total {
			end = total
		}
		for i := p.ScrollbackStart; i < end; i++ {
			lineText, err := p.Scrollback.GetLineText(i)
			if err != nil {
				continue
			}
			out = text.CopyWithCRLF(out, lineText)
			isLastEmitted := i == end-1
			// Anti-auto-scroll: omit the trailing CRLF on the very last
			// emitted row when nothing else (separator or input) follows,
			// so the final line doesn't land past the last terminal row
			// and force an unwanted scroll.
			if !isLastEmitted || p.SeparatorVisible || p.InputVisible {
				out = append(out, '\r', '\n')
			}
		}
	}

	if p.SeparatorVisible {
		out = append(out, strings.Repeat("-", p.Width)...)
		if p.InputVisible {
			out = append(out, '\r', '\n')
		}
	}

	var finalRow int
	cursorCol := 0
	if p.InputVisible {
		pos, err := CursorScreenPosition(p.InputText, p.InputCursorByte, p.Width)
		if err != nil {
			return nil, err
		}
		out = text.CopyWithCRLF(out, p.InputText)
		finalRow = pos.Row
		cursorCol = pos.Col
	}

	if p.InputVisible {
		out = append(out, showCursor...)
		out = append(out, cursorPositionEscape(finalRow+1, cursorCol+1)...)
	} else {
		out = append(out, hideCursor...)
	}

	return out, nil
}

func cursorPositionEscape(row, col int) string {
	return "\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}
