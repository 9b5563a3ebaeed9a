package scaffold

import (
	"fmt"

	"github.com/jakoblorz/create-node-api/internal/config"
	"github.com/jakoblorz/create-node-api/internal/filesystem"
	"github.com/jakoblorz/create-node-api/internal/manifest"
	"github.com/jakoblorz/create-node-api/internal/models"
	"github.com/jakoblorz/create-node-api/internal/pkgmgr"
	"github.com/jakoblorz/create-node-api/internal/resolver"
	"github.com/jakoblorz/create-node-api/internal/templates"
)

// Result captures what a successful run produced, for the summary view
type Result struct {
	Request       *models.ProjectRequest
	Destination   string
	WrittenFiles  []string
	ResolvedCount int
	Installed     bool
}

// Generator drives one scaffolding run: build the dependency set, resolve
// versions, assemble artifacts, materialize them, and optionally install.
type Generator struct {
	fs     filesystem.FileSystem
	client pkgmgr.Client
	cfg    *config.Config
}

// NewGenerator creates a Generator
func NewGenerator(fsys filesystem.FileSystem, client pkgmgr.Client, cfg *config.Config) *Generator {
	return &Generator{fs: fsys, client: client, cfg: cfg}
}

// Run executes the full pipeline for one validated request. The
// destination directory is the project name, resolved against the current
// working directory.
func (g *Generator) Run(req *models.ProjectRequest) (*Result, error) {
	deps := models.NewDependencySet(req.Framework, g.cfg.FastifyPlugins)

	resolvedCount := 0
	if g.cfg.ResolveVersions {
		resolved := resolver.New(g.client).Resolve(deps.Names())
		deps.ApplyResolved(resolved)
		resolvedCount = len(resolved)
	}

	artifacts, err := g.buildArtifacts(req, deps)
	if err != nil {
		return nil, err
	}

	dest := req.Name
	if err := NewMaterializer(g.fs).Write(dest, artifacts); err != nil {
		return nil, err
	}

	result := &Result{
		Request:       req,
		Destination:   dest,
		ResolvedCount: resolvedCount,
	}
	for _, artifact := range artifacts {
		result.WrittenFiles = append(result.WrittenFiles, artifact.RelativePath)
	}

	if g.cfg.AutoInstall {
		if err := NewInstaller(g.client).Run(dest); err != nil {
			// Files are already on disk; the failure still has to reach
			// the exit code.
			return result, err
		}
		result.Installed = true
	}

	return result, nil
}

// buildArtifacts produces the fixed artifact set plus any additional
// config-file templates from the configured directory.
func (g *Generator) buildArtifacts(req *models.ProjectRequest, deps *models.DependencySet) ([]*models.FileArtifact, error) {
	serverSrc, err := templates.ServerSource(req.Framework, req.Name)
	if err != nil {
		return nil, err
	}

	testSrc, err := templates.TestStubSource(req.Name)
	if err != nil {
		return nil, err
	}

	prettierSrc, err := templates.PrettierConfig(g.cfg.Formatter)
	if err != nil {
		return nil, err
	}

	manifestSrc, err := manifest.Build(req, deps).Render()
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest: %w", err)
	}

	fixed := []struct {
		path       string
		content    []byte
		executable bool
	}{
		{"package.json", manifestSrc, false},
		{".eslintrc.json", []byte(templates.ESLintConfig()), false},
		{".prettierrc.json", prettierSrc, false},
		{"tsconfig.json", []byte(templates.TSConfig()), false},
		{".husky/pre-commit", []byte(templates.PreCommitHook(req.PackageManager)), true},
		{"src/server.ts", []byte(serverSrc), false},
		{"src/server.test.ts", []byte(testSrc), false},
	}

	artifacts := make([]*models.FileArtifact, 0, len(fixed))
	for _, f := range fixed {
		artifact, err := models.NewFileArtifact(f.path, f.content, f.executable)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	extra, err := templates.ExtraArtifacts(g.fs, g.cfg.TemplatesDir, templates.ExtraData{
		Name:           req.Name,
		Port:           templates.DefaultPort,
		PackageManager: req.PackageManager.String(),
		Framework:      req.Framework.String(),
	})
	if err != nil {
		return nil, err
	}

	return append(artifacts, extra...), nil
}
