package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFileArtifact_ConfinesPaths(t *testing.T) {
	a, err := NewFileArtifact("src/server.ts", []byte("x"), false)
	require.NoError(t, err)
	require.Equal(t, "src/server.ts", a.RelativePath)

	_, err = NewFileArtifact("/etc/passwd", nil, false)
	require.Error(t, err)

	_, err = NewFileArtifact("../outside.txt", nil, false)
	require.Error(t, err)

	_, err = NewFileArtifact("src/../../outside.txt", nil, false)
	require.Error(t, err)
}

func TestFileArtifact_Mode(t *testing.T) {
	hook, err := NewFileArtifact(".husky/pre-commit", []byte("#!/bin/sh\n"), true)
	require.NoError(t, err)
	require.Equal(t, uint32(0755), hook.Mode())

	plain, err := NewFileArtifact("tsconfig.json", []byte("{}"), false)
	require.NoError(t, err)
	require.Equal(t, uint32(0644), plain.Mode())
}
