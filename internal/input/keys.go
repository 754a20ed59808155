package input

// Raw byte sequences for common terminal keys.
const (
	keyEnter     = "\r"
	keyEnterLF   = "\n"
	keyBackspace = "\x7f"
	keyBackCtrl  = "\b"
	keyCtrlC     = "\x03"
	keyCtrlD     = "\x04"
	keyEscape    = "\x1b"
	keyUp        = "\x1b[A"
	keyDown      = "\x1b[B"
	keyRight     = "\x1b[C"
	keyLeft      = "\x1b[D"
)

// ActionKind is the typed vocabulary of editor/REPL actions a decoded key
// sequence maps to.
type ActionKind int

const (
	// Unknown suppresses re-render; the byte sequence was not recognized.
	Unknown ActionKind = iota
	InsertCodepoint
	Newline
	Backspace
	Delete
	Left
	Right
	Up
	Down
	Submit
	Quit
)

// Action is a decoded, typed input event.
type Action struct {
	Kind ActionKind
	Rune rune
}

// DecodeKey converts a raw byte sequence read from the TTY into a typed
// Action. This is a minimal decoder covering the core's own action
// vocabulary; a complete terminal-escape grammar for every emulator is out
// of scope for the presentation core.
func DecodeKey(b []byte) Action {
	switch string(b) {
	case keyEnter, keyEnterLF:
		return Action{Kind: Submit}
	case keyBackspace, keyBackCtrl:
		return Action{Kind: Backspace}
	case keyCtrlC, keyCtrlD:
		return Action{Kind: Quit}
	case keyUp:
		return Action{Kind: Up}
	case keyDown:
		return Action{Kind: Down}
	case keyLeft:
		return Action{Kind: Left}
	case keyRight:
		return Action{Kind: Right}
	}

	if len(b) == 1 && b[0] >= 0x20 && b[0] < 0x7f {
		return Action{Kind: InsertCodepoint, Rune: rune(b[0])}
	}

	r := []rune(string(b))
	if len(r) == 1 && r[0] >= 0x80 {
		return Action{Kind: InsertCodepoint, Rune: r[0]}
	}

	return Action{Kind: Unknown}
}
