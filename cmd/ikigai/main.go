// Command ikigai is the terminal REPL entry point: it loads configuration,
// brings up the terminal, constructs a REPL session, and runs the event
// loop.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mgreenly/ikigai/internal/config"
	"github.com/mgreenly/ikigai/internal/input"
	"github.com/mgreenly/ikigai/internal/render"
	"github.com/mgreenly/ikigai/internal/repl"
	"github.com/mgreenly/ikigai/internal/scrollback"
	"github.com/mgreenly/ikigai/internal/tool"
)

func main() {
	var replayPath string

	rootCmd := &cobra.Command{
		Use:   "ikigai",
		Short: "Ikigai is an interactive terminal REPL for language-model agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if replayPath != "" {
				return runReplay(replayPath)
			}
			return runInteractive(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&replayPath, "replay", "", "replay a session log file and render the final frame to stdout")
	rootCmd.AddCommand(toolsCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}

func runInteractive(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	sessionLogPath := os.Getenv("IKIGAI_SESSION_LOG")
	var sessionLogFile *os.File
	if sessionLogPath != "" {
		sessionLogFile, err = os.OpenFile(sessionLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer sessionLogFile.Close()
	}

	session := repl.NewSession(ctx, cfg, logger, sessionLogFile)
	return session.Run(ctx, os.Stdin, os.Stdout)
}

// runReplay rebuilds scrollback from a recorded session log and renders one
// frame to stdout without touching a real TTY. Only InsertCodepoint and
// Submit actions are applied (every Submit appends a line, even an empty
// one); all other actions are skipped, and the pending input is not drawn.
func runReplay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	actions, err := repl.ReplayActions(f)
	if err != nil {
		return err
	}

	width := 80
	sb := scrollback.New(width)
	var current []byte
	for _, a := range actions {
		switch a.Kind {
		case input.InsertCodepoint:
			current = append(current, []byte(string(a.Rune))...)
		case input.Submit:
			sb.AppendLine(current)
			current = nil
		}
	}

	frame, err := render.RenderCombined(render.CombinedParams{
		Scrollback:      sb,
		ScrollbackStart: 0,
		ScrollbackCount: sb.Count(),
		InputText:       current,
		Width:           width,
	})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(frame)
	return err
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List discovered tool registry entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			reg := tool.Discover(cmd.Context(), logger, cfg.SystemToolDir, cfg.UserToolDir, cfg.ProjectToolDir)
			reg.Sort()
			for _, e := range reg.All() {
				fmt.Printf("%s\t%s\n", e.Name, e.Path)
			}
			return nil
		},
	}
}
