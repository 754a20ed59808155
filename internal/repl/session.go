// Package repl wires the presentation-core components (input editor,
// scrollback, layer cake, tool registry, reactive signals) behind a single
// owning Session, and implements the event loop that turns TTY bytes into
// rendered frames.
package repl

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/mgreenly/ikigai/internal/config"
	"github.com/mgreenly/ikigai/internal/input"
	"github.com/mgreenly/ikigai/internal/layer"
	"github.com/mgreenly/ikigai/internal/reactive"
	"github.com/mgreenly/ikigai/internal/render"
	"github.com/mgreenly/ikigai/internal/scrollback"
	"github.com/mgreenly/ikigai/internal/term"
	"github.com/mgreenly/ikigai/internal/tool"
	"github.com/mgreenly/ikigai/internal/toolpaths"
)

// Session is the common owner: it groups every component buffer (input
// buffer, scrollback, layer cake, tool registry, reactive signals) behind
// one struct so layers can borrow references with a lifetime bounded by
// the Session.
type Session struct {
	ID     string
	Logger *slog.Logger

	Input      *input.Buffer
	Scrollback *scrollback.Scrollback
	Cake       *layer.Cake
	Registry   *tool.Registry
	Paths      *toolpaths.Translator

	visible       reactive.Accessor[bool]
	setVisible    reactive.Setter[bool]
	model         reactive.Accessor[string]
	setModel      reactive.Setter[string]
	thinkingLevel reactive.Accessor[string]
	setThinking   reactive.Setter[string]
	spinnerFrame  reactive.Accessor[int]
	setSpinner    reactive.Setter[int]
	candidates    reactive.Accessor[[]layer.Candidate]
	setCandidates reactive.Setter[[]layer.Candidate]
	current       reactive.Accessor[int]
	setCurrent    reactive.Setter[int]

	termWidth, termHeight int
	log                   *sessionLog
}

// NewSession constructs a Session with an empty input buffer, empty
// scrollback, a fully-populated layer cake, and a tool registry discovered
// from cfg's configured directories.
func NewSession(ctx context.Context, cfg config.Config, logger *slog.Logger, logWriter io.Writer) *Session {
	width, height := cfg.DefaultWidth, 24
	if w, h, err := term.Size(os.Stdout); err == nil {
		width, height = w, h
	}

	s := &Session{
		ID:          uuid.New().String(),
		Logger:      logger,
		Input:       input.New(),
		Scrollback:  scrollback.New(width),
		Cake:        layer.NewCake(),
		Paths:       toolpaths.NewTranslator("."),
		termWidth:   width,
		termHeight:  height,
	}

	s.Registry = tool.Discover(ctx, logger, cfg.SystemToolDir, cfg.UserToolDir, cfg.ProjectToolDir)

	s.visible, s.setVisible = reactive.CreateSignal(true)
	s.model, s.setModel = reactive.CreateSignal("")
	s.thinkingLevel, s.setThinking = reactive.CreateSignal("")
	s.spinnerFrame, s.setSpinner = reactive.CreateSignal(0)
	s.candidates, s.setCandidates = reactive.CreateSignal[[]layer.Candidate](nil)
	s.current, s.setCurrent = reactive.CreateSignal(0)

	s.Cake.Add(layer.NewBannerLayer())
	s.Cake.Add(layer.NewScrollbackLayer(s.Scrollback))
	s.Cake.Add(layer.NewSeparatorLayer(s.visible))
	s.Cake.Add(layer.NewInputLayer(func() []byte { return s.Input.Text() }, s.visible))
	s.Cake.Add(layer.NewSpinnerLayer(func() bool { return false }, s.spinnerFrame, "waiting"))
	s.Cake.Add(layer.NewStatusLayer(s.visible, s.model, s.thinkingLevel))
	s.Cake.Add(layer.NewCompletionLayer(s.candidates, s.current))
	s.Cake.ViewportHeight = height

	if logWriter != nil {
		s.log = newSessionLog(logWriter)
	}

	return s
}

func (s *Session) width() int { return s.termWidth }

// RecomputeViewport pins the viewport to the bottom of the document.
func (s *Session) RecomputeViewport() {
	total := s.Cake.TotalHeight(s.termWidth)
	s.Cake.ViewportHeight = s.termHeight
	if total > s.termHeight {
		s.Cake.ViewportRow = total - s.termHeight
	} else {
		s.Cake.ViewportRow = 0
	}
}

// Resize updates the terminal dimensions, invalidates the scrollback's
// width-dependent layout cache, and recomputes the viewport. Called in
// response to SIGWINCH.
func (s *Session) Resize(width, height int) {
	s.termWidth = width
	s.termHeight = height
	s.Scrollback.EnsureLayout(width)
	s.RecomputeViewport()
}

// RenderFrame composes the canonical direct-draw frame: the direct-draw
// path is the one actually driven by the event loop; the session uses the
// layer cake only for its total height, and tests render it directly.
func (s *Session) RenderFrame() ([]byte, error) {
	s.Scrollback.EnsureLayout(s.termWidth)
	start, count := s.scrollbackWindow()
	return render.RenderCombined(render.CombinedParams{
		Scrollback:       s.Scrollback,
		ScrollbackStart:  start,
		ScrollbackCount:  count,
		InputText:        s.Input.Text(),
		InputCursorByte:  s.Input.Cursor().ByteOffset,
		SeparatorVisible: s.visible(),
		InputVisible:     s.visible(),
		Width:            s.termWidth,
	})
}

func (s *Session) scrollbackWindow() (start, count int) {
	n := s.Scrollback.Count()
	if n == 0 {
		return 0, 0
	}
	s.Input.EnsureLayout(s.termWidth)
	inputRows := s.Input.PhysicalLines()
	if inputRows < 1 {
		inputRows = 1
	}
	reserved := inputRows
	if s.visible() {
		reserved++ // separator row
	}
	budget := s.termHeight - reserved
	if budget < 1 {
		budget = 1
	}
	start = 0
	for i := 0; i < n; i++ {
		remaining := 0
		for j := i; j < n; j++ {
			remaining += s.Scrollback.PhysicalLinesForLine(j)
		}
		if remaining <= budget {
			start = i
			break
		}
		start = i + 1
	}
	return start, n - start
}

func (s *Session) logAction(a input.Action) {
	if s.log == nil {
		return
	}
	s.log.record(a)
}

// Run drives the event loop: raw-mode terminal setup, SIGWINCH handling,
// single-byte TTY reads decoded into actions, and one atomic frame write
// per non-Unknown action.
func (s *Session) Run(ctx context.Context, in *os.File, out io.Writer) error {
	state, err := term.EnableRaw(in)
	if err != nil {
		return err
	}
	defer state.Restore()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	if err := s.writeFrame(out); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	buf := make([]byte, 32)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			if w, h, err := term.Size(os.Stdout); err == nil {
				s.Resize(w, h)
				if err := s.writeFrame(out); err != nil {
					return err
				}
			}
			continue
		default:
		}

		n, err := reader.Read(buf[:1])
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if n == 0 {
			continue
		}
		raw := buf[:1]
		if extra := reader.Buffered(); extra > 0 {
			more := make([]byte, extra)
			_, _ = reader.Read(more)
			raw = append(raw, more...)
		}

		action := input.DecodeKey(raw)
		redraw, quit := s.Apply(action)
		if redraw {
			if err := s.writeFrame(out); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}

func (s *Session) writeFrame(out io.Writer) error {
	frame, err := s.RenderFrame()
	if err != nil {
		return err
	}
	n, err := out.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	return nil
}
