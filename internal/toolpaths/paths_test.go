package toolpaths

import (
	"testing"
)

func TestTranslateToPathRoundTrip(t *testing.T) {
	tr := NewTranslator("/workspace/project")

	path, err := tr.TranslateToPath("ik://notes/todo.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "/workspace/project/notes/todo.txt"
	if path != want {
		t.Errorf("TranslateToPath = %q, want %q", path, want)
	}

	uri, err := tr.TranslateToURI(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uri != "ik://notes/todo.txt" {
		t.Errorf("TranslateToURI round-trip = %q, want %q", uri, "ik://notes/todo.txt")
	}
}

func TestTranslateToPathRejectsTraversal(t *testing.T) {
	tr := NewTranslator("/workspace/project")
	_, err := tr.TranslateToPath("ik://../../etc/passwd")
	if err == nil {
		t.Fatal("expected an error for a traversal attempt")
	}
}

func TestTranslateToPathRejectsNonScheme(t *testing.T) {
	tr := NewTranslator("/workspace/project")
	_, err := tr.TranslateToPath("/etc/passwd")
	if err == nil {
		t.Fatal("expected an error for a URI missing the ik:// scheme")
	}
}

func TestTranslateToURIRejectsPathOutsideRoot(t *testing.T) {
	tr := NewTranslator("/workspace/project")
	_, err := tr.TranslateToURI("/etc/passwd")
	if err == nil {
		t.Fatal("expected an error for a path outside the translator's root")
	}
}

func TestTranslateToPathAcceptsRootItself(t *testing.T) {
	tr := NewTranslator("/workspace/project")
	path, err := tr.TranslateToPath("ik://")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/workspace/project" {
		t.Errorf("TranslateToPath(ik://) = %q, want %q", path, "/workspace/project")
	}
}
