package templates

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/jakoblorz/create-node-api/internal/filesystem"
	"github.com/jakoblorz/create-node-api/internal/models"
)

// ExtraData is the data additional config-file templates are rendered with
type ExtraData struct {
	Name           string
	Port           int
	PackageManager string
	Framework      string
}

// extraMatter is the YAML frontmatter of an additional template file
type extraMatter struct {
	Path       string `yaml:"path"`
	Executable bool   `yaml:"executable"`
}

// ExtraArtifacts loads every .tmpl file from dir and renders it into a
// FileArtifact. Each template declares its destination in YAML frontmatter:
//
//	---
//	path: .dockerignore
//	executable: false
//	---
//	node_modules
//	dist
//
// The body is a text/template rendered with ExtraData and the sprig func
// map. A missing or empty dir yields no artifacts.
func ExtraArtifacts(fs filesystem.FileSystem, dir string, data ExtraData) ([]*models.FileArtifact, error) {
	if dir == "" || !fs.Exists(dir) {
		return nil, nil
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	var artifacts []*models.FileArtifact
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		raw, err := fs.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}

		var matter extraMatter
		body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
		if err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter of %s: %w", entry.Name(), err)
		}
		if strings.TrimSpace(matter.Path) == "" {
			return nil, fmt.Errorf("template %s declares no destination path", entry.Name())
		}

		content, err := render(entry.Name(), string(body), data)
		if err != nil {
			return nil, err
		}

		artifact, err := models.NewFileArtifact(matter.Path, []byte(content), matter.Executable)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", entry.Name(), err)
		}

		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}
