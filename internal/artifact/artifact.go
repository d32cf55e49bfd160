// Package artifact writes the per-date JSON menu file consumed by the
// frontend build.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ucsc-menus/menu-sync/internal/menu"
)

// Writer persists date results as an indented JSON document at a fixed
// path, replacing any previous artifact.
type Writer struct {
	path string
}

// NewWriter creates a writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the artifact destination.
func (w *Writer) Path() string {
	return w.path
}

// Write encodes result and writes it to the artifact path, creating
// parent directories as needed.
func (w *Writer) Write(result menu.DateResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding menu data: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("writing menu data: %w", err)
	}
	return nil
}
