// Package term wraps raw-mode terminal setup/teardown and size queries on
// top of golang.org/x/term.
package term

import (
	"os"

	"golang.org/x/term"
)

// State holds the terminal's prior mode, restored by Restore.
type State struct {
	fd  int
	old *term.State
}

// EnableRaw puts f into raw mode and returns a State that can restore it.
// If f is not a terminal, EnableRaw returns a nil State and a nil error so
// callers (tests, --replay mode) can run without a TTY.
func EnableRaw(f *os.File) (*State, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &State{fd: fd, old: old}, nil
}

// Restore returns the terminal to the mode captured by EnableRaw. A nil
// receiver is a no-op, matching the non-TTY case above.
func (s *State) Restore() error {
	if s == nil {
		return nil
	}
	return term.Restore(s.fd, s.old)
}

// Size returns the current terminal column/row count for f.
func Size(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}
