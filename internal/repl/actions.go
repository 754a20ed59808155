package repl

import "github.com/mgreenly/ikigai/internal/input"

// Apply dispatches a single decoded action against the session, mutating
// the input buffer, scrollback, or viewport as appropriate, and returns
// whether the frame needs to be redrawn. Unknown actions suppress
// re-render.
func (s *Session) Apply(a input.Action) (redraw bool, quit bool) {
	s.logAction(a)

	switch a.Kind {
	case input.Unknown:
		return false, false
	case input.InsertCodepoint:
		s.Input.InsertRune(a.Rune)
	case input.Newline:
		s.Input.InsertNewline()
	case input.Backspace:
		s.Input.Backspace()
	case input.Delete:
		s.Input.Delete()
	case input.Left:
		s.Input.MoveLeft()
	case input.Right:
		s.Input.MoveRight()
	case input.Up:
		s.Input.MoveUp(s.width())
	case input.Down:
		s.Input.MoveDown(s.width())
	case input.Submit:
		s.submit()
	case input.Quit:
		return true, true
	default:
		return false, false
	}

	s.RecomputeViewport()
	return true, false
}

// submit moves the current input buffer's text into scrollback and clears
// the editor. Dispatch to a provider or command layer is out of scope
// here; this only implements the REPL-local meaning of "Submit".
func (s *Session) submit() {
	text := s.Input.Submit()
	if text != "" {
		s.Scrollback.AppendLine([]byte(text))
	}
}
