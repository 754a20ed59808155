package ikerr

import (
	"errors"
	"testing"
)

func TestIsMatchesByKindOnly(t *testing.T) {
	a := New(OutOfRange, "index %d out of range", 5)
	b := New(OutOfRange, "different message entirely")
	if !errors.Is(a, b) {
		t.Error("errors with the same Kind should satisfy errors.Is regardless of message")
	}
}

func TestIsRejectsDifferentKind(t *testing.T) {
	a := New(InvalidArg, "bad")
	b := New(Io, "bad")
	if errors.Is(a, b) {
		t.Error("errors with different Kinds must not satisfy errors.Is")
	}
}

func TestAsExtractsConcreteError(t *testing.T) {
	wrapped := error(New(OutOfMemory, "allocation failed"))
	var target *Error
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As failed to extract *Error")
	}
	if target.Kind != OutOfMemory {
		t.Errorf("Kind = %v, want OutOfMemory", target.Kind)
	}
}

func TestKindStringNames(t *testing.T) {
	cases := map[Kind]string{
		InvalidArg:  "invalid_arg",
		OutOfRange:  "out_of_range",
		Io:          "io",
		OutOfMemory: "out_of_memory",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestErrorMessageIncludesKindAndText(t *testing.T) {
	err := New(InvalidArg, "width must be positive")
	if err.Error() != "invalid_arg: width must be positive" {
		t.Errorf("Error() = %q", err.Error())
	}
}
