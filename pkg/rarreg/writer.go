package rarreg

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes the rendered document to path, replacing any existing
// file, and returns the absolute path written.
//
// The text goes to a temporary file in the same directory that is renamed
// over path, so a failed write never leaves a partial key file behind.
func WriteFile(path string, doc *Document, layout Layout) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), "."+filepath.Base(abs)+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(doc.Render(layout.LineWidth)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write key file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close key file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("failed to set key file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		return "", fmt.Errorf("failed to replace %s: %w", abs, err)
	}

	return abs, nil
}
