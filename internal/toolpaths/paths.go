// Package toolpaths implements ik:// URI translation for the tool
// subsystem: ik:// is rooted at the session's working directory and
// traversal outside that root is rejected rather than silently allowed.
package toolpaths

import (
	"path/filepath"
	"strings"

	"github.com/mgreenly/ikigai/internal/ikerr"
)

const scheme = "ik://"

// Translator resolves ik:// URIs against a fixed root directory.
type Translator struct {
	root string
}

// NewTranslator creates a Translator rooted at root. root is made absolute
// and cleaned.
func NewTranslator(root string) *Translator {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &Translator{root: filepath.Clean(abs)}
}

// TranslateToPath resolves an ik:// URI to an absolute filesystem path,
// rejecting any relative path that would escape the translator's root.
func (t *Translator) TranslateToPath(uri string) (string, error) {
	if !strings.HasPrefix(uri, scheme) {
		return "", ikerr.New(ikerr.InvalidArg, "not an ik:// uri: %q", uri)
	}
	rel := strings.TrimPrefix(uri, scheme)
	joined := filepath.Join(t.root, rel)
	cleaned := filepath.Clean(joined)
	if cleaned != t.root && !strings.HasPrefix(cleaned, t.root+string(filepath.Separator)) {
		return "", ikerr.New(ikerr.InvalidArg, "path escapes root: %q", uri)
	}
	return cleaned, nil
}

// TranslateToURI is the inverse of TranslateToPath for any absolute path
// that lives under the translator's root.
func (t *Translator) TranslateToURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ikerr.New(ikerr.InvalidArg, "cannot resolve path: %v", err)
	}
	rel, err := filepath.Rel(t.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", ikerr.New(ikerr.InvalidArg, "path escapes root: %q", path)
	}
	return scheme + filepath.ToSlash(rel), nil
}
