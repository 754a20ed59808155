package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/mgreenly/ikigai/internal/toolpaths"
)

const (
	executionTimeout = 30 * time.Second
	executionCap     = 64*1024 - 1
)

// envelope is the JSON result handed back to the caller for every
// invocation; it is always valid JSON, never a Go error.
type envelope struct {
	Success   bool            `json:"tool_success"`
	Output    json.RawMessage `json:"output,omitempty"`
	ErrorKind string          `json:"error_kind,omitempty"`
	Message   string          `json:"message,omitempty"`
}

func errorEnvelope(kind, message string) string {
	e := envelope{Success: false, ErrorKind: kind, Message: message}
	b, err := json.Marshal(e)
	if err != nil {
		return `{"tool_success":false,"error_kind":"execution_failed","message":"failed to marshal error"}`
	}
	return string(b)
}

// Execute dispatches a single tool invocation by name, translating ik://
// URIs in argsJSON before the subprocess call and in its output afterward.
// It never returns a Go error: every outcome, success or failure, is
// encoded in the returned JSON envelope string.
func Execute(ctx context.Context, registry *Registry, paths *toolpaths.Translator, agentID, name string, argsJSON []byte) string {
	if registry == nil {
		return errorEnvelope("registry_unavailable", "tool registry is not available")
	}

	entry, ok := registry.Lookup(name)
	if !ok {
		return errorEnvelope("tool_not_found", "no tool registered with name "+name)
	}

	translatedArgs, err := translateURIsToPath(paths, argsJSON)
	if err != nil {
		return errorEnvelope("translation_failed", err.Error())
	}

	stdout, err := runSubprocess(ctx, entry.Path, agentID, translatedArgs)
	if err != nil {
		return errorEnvelope("execution_failed", err.Error())
	}

	translatedOutput, err := translateURIsToIk(paths, stdout)
	if err != nil {
		return errorEnvelope("translation_failed", err.Error())
	}

	e := envelope{Success: true, Output: translatedOutput}
	b, err := json.Marshal(e)
	if err != nil {
		return errorEnvelope("execution_failed", "failed to marshal result")
	}
	return string(b)
}

func runSubprocess(ctx context.Context, path, agentID string, stdin []byte) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, executionTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, path)
	cmd.Env = append(cmd.Environ(), "IKIGAI_AGENT_ID="+agentID)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	var stdout bytes.Buffer
	cmd.Stdout = &limitedWriter{buf: &stdout, limit: executionCap}
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	if _, werr := stdinPipe.Write(stdin); werr != nil {
		killProcessGroup(cmd)
		cmd.Wait()
		return nil, werr
	}
	stdinPipe.Close()

	waitErr := cmd.Wait()
	if runCtx.Err() == context.DeadlineExceeded {
		killProcessGroup(cmd)
		return nil, runCtx.Err()
	}
	if waitErr != nil {
		return nil, waitErr
	}
	if stdout.Len() == 0 {
		return nil, errNoOutput
	}
	return stdout.Bytes(), nil
}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}

func translateURIsToPath(paths *toolpaths.Translator, argsJSON []byte) ([]byte, error) {
	if paths == nil {
		return argsJSON, nil
	}
	return walkAndTranslate(argsJSON, func(s string) (string, error) {
		if !strings.HasPrefix(s, "ik://") {
			return s, nil
		}
		return paths.TranslateToPath(s)
	})
}

func translateURIsToIk(paths *toolpaths.Translator, output []byte) (json.RawMessage, error) {
	if paths == nil {
		return output, nil
	}
	translated, err := walkAndTranslate(output, func(s string) (string, error) {
		if !strings.HasPrefix(s, "/") {
			return s, nil // not an absolute path, leave as-is
		}
		uri, err := paths.TranslateToURI(s)
		if err != nil {
			return s, nil // not a path under the root, leave as-is
		}
		return uri, nil
	})
	if err != nil {
		return nil, err
	}
	return translated, nil
}

// walkAndTranslate decodes data as arbitrary JSON, applies fn to every
// string value reachable from the top level, and re-encodes it.
func walkAndTranslate(data []byte, fn func(string) (string, error)) ([]byte, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return data, nil // not JSON, pass through untouched
	}
	translated, err := translateValue(v, fn)
	if err != nil {
		return nil, err
	}
	return json.Marshal(translated)
}

func translateValue(v any, fn func(string) (string, error)) (any, error) {
	switch val := v.(type) {
	case string:
		out, err := fn(val)
		if err != nil {
			return nil, err
		}
		return out, nil
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			translated, err := translateValue(item, fn)
			if err != nil {
				return nil, err
			}
			result[i] = translated
		}
		return result, nil
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, item := range val {
			translated, err := translateValue(item, fn)
			if err != nil {
				return nil, err
			}
			result[k] = translated
		}
		return result, nil
	default:
		return v, nil
	}
}
