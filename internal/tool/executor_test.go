package tool

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mgreenly/ikigai/internal/toolpaths"
)

func TestExecuteRegistryUnavailable(t *testing.T) {
	out := Execute(context.Background(), nil, nil, "agent-1", "anything", nil)
	var env map[string]any
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env["tool_success"] != false || env["error_kind"] != "registry_unavailable" {
		t.Errorf("envelope = %v, want tool_success=false error_kind=registry_unavailable", env)
	}
}

func TestExecuteToolNotFound(t *testing.T) {
	reg := NewRegistry()
	out := Execute(context.Background(), reg, nil, "agent-1", "missing", nil)
	var env map[string]any
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env["tool_success"] != false || env["error_kind"] != "tool_not_found" {
		t.Errorf("envelope = %v, want tool_success=false error_kind=tool_not_found", env)
	}
}

func TestExecuteSuccessRunsSubprocess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "echo-tool")
	script := "#!/bin/sh\ncat\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	reg := NewRegistry()
	reg.Add(Entry{Name: "echo", Path: path})

	out := Execute(context.Background(), reg, nil, "agent-1", "echo", []byte(`{"hello":"world"}`))
	var env map[string]any
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env["tool_success"] != true {
		t.Fatalf("envelope = %v, want tool_success=true", env)
	}
	output, ok := env["output"].(map[string]any)
	if !ok || output["hello"] != "world" {
		t.Errorf("output = %v, want echoed input", env["output"])
	}
}

func TestExecuteFailureOnEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "silent-tool")
	script := "#!/bin/sh\nexit 0\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	reg := NewRegistry()
	reg.Add(Entry{Name: "silent", Path: path})

	out := Execute(context.Background(), reg, nil, "agent-1", "silent", nil)
	var env map[string]any
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env["tool_success"] != false || env["error_kind"] != "execution_failed" {
		t.Errorf("envelope = %v, want tool_success=false error_kind=execution_failed", env)
	}
}

func TestExecuteTranslatesIkURIs(t *testing.T) {
	root := t.TempDir()
	dir := t.TempDir()
	path := filepath.Join(dir, "path-tool")
	script := "#!/bin/sh\ncat\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	reg := NewRegistry()
	reg.Add(Entry{Name: "path", Path: path})
	tr := toolpaths.NewTranslator(root)

	argsJSON := []byte(`{"file":"ik://notes.txt"}`)
	out := Execute(context.Background(), reg, tr, "agent-1", "path", argsJSON)

	var env map[string]any
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env["tool_success"] != true {
		t.Fatalf("envelope = %v, want tool_success=true", env)
	}
	output, ok := env["output"].(map[string]any)
	if !ok {
		t.Fatalf("output = %v, want an object", env["output"])
	}
	if output["file"] != "ik://notes.txt" {
		t.Errorf("file = %v, want the original ik:// uri round-tripped back", output["file"])
	}
}
