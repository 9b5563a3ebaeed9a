package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileArtifact is one generated file: its path relative to the destination
// root, its content, and whether it must carry the executable bit.
type FileArtifact struct {
	RelativePath string
	Content      []byte
	Executable   bool
}

// NewFileArtifact creates a FileArtifact after confining the path to the
// destination root. Absolute paths and paths escaping the root are rejected.
func NewFileArtifact(relativePath string, content []byte, executable bool) (*FileArtifact, error) {
	cleaned := filepath.Clean(relativePath)
	if filepath.IsAbs(cleaned) {
		return nil, fmt.Errorf("artifact path must be relative: %s", relativePath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("artifact path escapes destination: %s", relativePath)
	}

	return &FileArtifact{
		RelativePath: cleaned,
		Content:      content,
		Executable:   executable,
	}, nil
}

// Mode returns the file mode the artifact is written with
func (a *FileArtifact) Mode() uint32 {
	if a.Executable {
		return 0755
	}
	return 0644
}
