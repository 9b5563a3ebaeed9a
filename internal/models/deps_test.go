package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDependencySet_Express(t *testing.T) {
	ds := NewDependencySet(FrameworkExpress, nil)

	require.Contains(t, ds.Runtime, "express")
	require.Contains(t, ds.Dev, "@types/express")
	require.NotContains(t, ds.Runtime, "fastify")

	// Every entry carries a non-empty constraint from the start
	for name, version := range ds.Runtime {
		require.NotEmpty(t, version, "runtime %s", name)
	}
	for name, version := range ds.Dev {
		require.NotEmpty(t, version, "dev %s", name)
	}
}

func TestNewDependencySet_Fastify(t *testing.T) {
	plugins := []string{"@fastify/cors", "@fastify/swagger", "fastify-type-provider-zod"}
	ds := NewDependencySet(FrameworkFastify, plugins)

	require.Contains(t, ds.Runtime, "fastify")
	for _, plugin := range plugins {
		require.Contains(t, ds.Runtime, plugin)
	}
	require.NotContains(t, ds.Runtime, "express")
	require.NotContains(t, ds.Dev, "@types/express")
}

func TestNewDependencySet_UnknownPluginGetsLatest(t *testing.T) {
	ds := NewDependencySet(FrameworkFastify, []string{"@fastify/helmet"})
	require.Equal(t, "latest", ds.Runtime["@fastify/helmet"])
}

func TestDependencySet_Names(t *testing.T) {
	ds := NewDependencySet(FrameworkExpress, nil)
	names := ds.Names()

	require.Equal(t, "express", names[0], "runtime group comes first")
	require.Len(t, names, len(ds.Runtime)+len(ds.Dev))

	seen := make(map[string]bool)
	for _, name := range names {
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestDependencySet_ApplyResolved(t *testing.T) {
	ds := NewDependencySet(FrameworkExpress, nil)
	pinnedTS := ds.Dev["typescript"]

	ds.ApplyResolved(map[string]string{
		"express": "^4.19.2",
		"eslint":  "",
		"unknown": "^1.0.0",
	})

	require.Equal(t, "^4.19.2", ds.Runtime["express"])
	// Empty and unknown resolutions leave pinned defaults in place
	require.Equal(t, PinnedDefault("eslint"), ds.Dev["eslint"])
	require.Equal(t, pinnedTS, ds.Dev["typescript"])
	require.NotContains(t, ds.Runtime, "unknown")
}
