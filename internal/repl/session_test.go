package repl

import (
	"context"
	"testing"

	"github.com/mgreenly/ikigai/internal/config"
	"github.com/mgreenly/ikigai/internal/input"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.Config{DefaultWidth: 20}
	s := NewSession(context.Background(), cfg, nil, nil)
	s.termHeight = 10
	s.Cake.ViewportHeight = 10
	return s
}

func TestApplyInsertCodepointRedraws(t *testing.T) {
	s := newTestSession(t)
	redraw, quit := s.Apply(input.Action{Kind: input.InsertCodepoint, Rune: 'a'})
	if !redraw || quit {
		t.Fatalf("Apply(insert) = (%v,%v), want (true,false)", redraw, quit)
	}
	if string(s.Input.Text()) != "a" {
		t.Errorf("Input.Text() = %q, want %q", s.Input.Text(), "a")
	}
}

func TestApplyUnknownSuppressesRedraw(t *testing.T) {
	s := newTestSession(t)
	redraw, quit := s.Apply(input.Action{Kind: input.Unknown})
	if redraw || quit {
		t.Errorf("Apply(unknown) = (%v,%v), want (false,false)", redraw, quit)
	}
}

func TestApplyQuitSignalsQuit(t *testing.T) {
	s := newTestSession(t)
	redraw, quit := s.Apply(input.Action{Kind: input.Quit})
	if !redraw || !quit {
		t.Errorf("Apply(quit) = (%v,%v), want (true,true)", redraw, quit)
	}
}

func TestApplySubmitMovesTextToScrollback(t *testing.T) {
	s := newTestSession(t)
	for _, r := range "hello" {
		s.Apply(input.Action{Kind: input.InsertCodepoint, Rune: r})
	}
	s.Apply(input.Action{Kind: input.Submit})

	if s.Scrollback.Count() != 1 {
		t.Fatalf("Scrollback.Count() = %d, want 1", s.Scrollback.Count())
	}
	got, err := s.Scrollback.GetLineText(0)
	if err != nil || string(got) != "hello" {
		t.Errorf("GetLineText(0) = %q, %v, want %q", got, err, "hello")
	}
	if len(s.Input.Text()) != 0 {
		t.Errorf("Input.Text() after submit = %q, want empty", s.Input.Text())
	}
}

func TestApplySubmitOfEmptyBufferAddsNoLine(t *testing.T) {
	s := newTestSession(t)
	s.Apply(input.Action{Kind: input.Submit})
	if s.Scrollback.Count() != 0 {
		t.Errorf("Scrollback.Count() = %d, want 0 for empty submit", s.Scrollback.Count())
	}
}

func TestRecomputeViewportPinsToBottom(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 20; i++ {
		s.Scrollback.AppendLine([]byte("line"))
	}
	s.RecomputeViewport()

	total := s.Cake.TotalHeight(s.termWidth)
	want := total - s.termHeight
	if s.Cake.ViewportRow != want {
		t.Errorf("ViewportRow = %d, want %d (pinned to bottom)", s.Cake.ViewportRow, want)
	}
}

func TestRecomputeViewportStaysAtZeroWhenContentFits(t *testing.T) {
	s := newTestSession(t)
	s.termHeight = 100
	s.Cake.ViewportHeight = 100
	s.Scrollback.AppendLine([]byte("one line"))
	s.RecomputeViewport()
	if s.Cake.ViewportRow != 0 {
		t.Errorf("ViewportRow = %d, want 0 when content fits the viewport", s.Cake.ViewportRow)
	}
}

func TestRenderFrameProducesNonEmptyFrame(t *testing.T) {
	s := newTestSession(t)
	s.Apply(input.Action{Kind: input.InsertCodepoint, Rune: 'x'})
	frame, err := s.RenderFrame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frame) == 0 {
		t.Error("RenderFrame produced an empty frame")
	}
}
