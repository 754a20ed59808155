package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	discoverySuffix  = "-tool"
	discoveryTimeout = 1 * time.Second
	discoveryCap     = 8 * 1024
)

// Discover scans systemDir, userDir, then projectDir (missing directories
// are not errors) and returns a registry where later scans override earlier
// ones by tool name, implementing system < user < project precedence.
func Discover(ctx context.Context, logger *slog.Logger, systemDir, userDir, projectDir string) *Registry {
	reg := NewRegistry()
	for _, dir := range []string{systemDir, userDir, projectDir} {
		if dir == "" {
			continue
		}
		scanDirectory(ctx, logger, dir, reg)
	}
	return reg
}

func scanDirectory(ctx context.Context, logger *slog.Logger, dir string, reg *Registry) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return // missing directory is not an error
	}

	for _, de := range entries {
		name := de.Name()
		if name == "." || name == ".." {
			continue
		}
		if !strings.HasSuffix(name, discoverySuffix) {
			continue
		}
		full := filepath.Join(dir, name)
		if !isExecutable(full) {
			continue
		}

		schema, err := callToolSchema(ctx, full)
		if err != nil {
			if logger != nil {
				logger.Debug("tool schema call failed", "path", full, "error", err)
			}
			continue
		}

		toolName := extractToolName(name)
		reg.Add(Entry{Name: toolName, Path: full, Schema: schema})
	}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}

func callToolSchema(ctx context.Context, path string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, discoveryTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--schema")
	cmd.Stderr = nil
	var stdout bytes.Buffer
	cmd.Stdout = &limitedWriter{buf: &stdout, limit: discoveryCap}

	if err := cmd.Run(); err != nil {
		return nil, err
	}
	if stdout.Len() == 0 {
		return nil, errNoOutput
	}

	var doc json.RawMessage
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// extractToolName strips the -tool suffix from basename (if present) and
// replaces remaining dashes with underscores.
func extractToolName(basename string) string {
	name := basename
	if strings.HasSuffix(name, discoverySuffix) {
		name = strings.TrimSuffix(name, discoverySuffix)
	}
	return strings.ReplaceAll(name, "-", "_")
}

// limitedWriter silently truncates writes past limit, matching the source's
// fixed-size discovery buffer.
type limitedWriter struct {
	buf   *bytes.Buffer
	limit int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		return len(p), nil
	}
	if len(p) > remaining {
		w.buf.Write(p[:remaining])
		return len(p), nil
	}
	return w.buf.Write(p)
}
