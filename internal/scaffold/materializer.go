package scaffold

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/jakoblorz/create-node-api/internal/filesystem"
	"github.com/jakoblorz/create-node-api/internal/models"
)

// Materializer writes a run's file artifacts under the destination root.
// It only ever creates directories and truncates files in place; nothing
// pre-existing is deleted, and a failed write aborts the remaining writes
// without rolling back the ones already done.
type Materializer struct {
	fs filesystem.FileSystem
}

// NewMaterializer creates a Materializer on the given filesystem
func NewMaterializer(fsys filesystem.FileSystem) *Materializer {
	return &Materializer{fs: fsys}
}

// Write ensures the destination tree exists and writes every artifact.
// Executable artifacts get their mode fixed with an explicit chmod, since
// WriteFile permissions only apply to newly created files.
func (m *Materializer) Write(dest string, artifacts []*models.FileArtifact) error {
	for _, dir := range []string{dest, filepath.Join(dest, "src"), filepath.Join(dest, ".husky")} {
		if err := m.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	for _, artifact := range artifacts {
		path := filepath.Join(dest, artifact.RelativePath)

		if parent := filepath.Dir(path); parent != dest {
			if err := m.fs.MkdirAll(parent, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", parent, err)
			}
		}

		mode := fs.FileMode(artifact.Mode())
		if err := m.fs.WriteFile(path, artifact.Content, mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", artifact.RelativePath, err)
		}

		if artifact.Executable {
			if err := m.fs.Chmod(path, mode); err != nil {
				return fmt.Errorf("failed to mark %s executable: %w", artifact.RelativePath, err)
			}
		}
	}

	return nil
}
