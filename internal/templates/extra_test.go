package templates

import (
	"testing"

	"github.com/jakoblorz/create-node-api/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestExtraArtifacts(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/templates/dockerignore.tmpl", []byte(`---
path: .dockerignore
---
node_modules
dist
`))
	fs.AddFile("/templates/run.tmpl", []byte(`---
path: scripts/run.sh
executable: true
---
#!/bin/sh
{{ .PackageManager }} run dev
`))
	fs.AddFile("/templates/ignored.txt", []byte("not a template"))

	artifacts, err := ExtraArtifacts(fs, "/templates", ExtraData{
		Name:           "demo",
		Port:           DefaultPort,
		PackageManager: "pnpm",
		Framework:      "fastify",
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	byPath := make(map[string]bool)
	for _, a := range artifacts {
		byPath[a.RelativePath] = a.Executable
		if a.RelativePath == "scripts/run.sh" {
			require.Contains(t, string(a.Content), "pnpm run dev")
		}
	}
	require.Contains(t, byPath, ".dockerignore")
	require.False(t, byPath[".dockerignore"])
	require.True(t, byPath["scripts/run.sh"])
}

func TestExtraArtifacts_MissingDir(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	artifacts, err := ExtraArtifacts(fs, "", ExtraData{})
	require.NoError(t, err)
	require.Empty(t, artifacts)

	artifacts, err = ExtraArtifacts(fs, "/nope", ExtraData{})
	require.NoError(t, err)
	require.Empty(t, artifacts)
}

func TestExtraArtifacts_RejectsMissingPath(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/templates/bad.tmpl", []byte(`---
executable: true
---
content
`))

	_, err := ExtraArtifacts(fs, "/templates", ExtraData{})
	require.Error(t, err)
}

func TestExtraArtifacts_RejectsEscapingPath(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/templates/evil.tmpl", []byte(`---
path: ../outside.txt
---
content
`))

	_, err := ExtraArtifacts(fs, "/templates", ExtraData{})
	require.Error(t, err)
}
