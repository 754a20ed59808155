package term

import (
	"os"
	"testing"
)

func TestEnableRawOnNonTTYIsNoop(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	state, err := EnableRaw(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != nil {
		t.Errorf("state = %+v, want nil for a non-TTY file", state)
	}
}

func TestRestoreOnNilStateIsNoop(t *testing.T) {
	var s *State
	if err := s.Restore(); err != nil {
		t.Errorf("Restore() on nil state = %v, want nil", err)
	}
}

func TestSizeOnNonTTYReturnsError(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if _, _, err := Size(f); err == nil {
		t.Error("Size on a non-TTY file should return an error")
	}
}
