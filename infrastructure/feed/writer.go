package feed

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes generated documents to the local filesystem.
type FileWriter struct{}

// Write stores data at path, creating the parent directory when needed.
func (FileWriter) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
