package templates

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/create-node-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestServerSource_Express(t *testing.T) {
	src, err := ServerSource(models.FrameworkExpress, "demo")
	require.NoError(t, err)

	require.Contains(t, src, `import express from "express"`)
	require.Contains(t, src, "const port = 3000")
	require.Contains(t, src, `app.get("/"`)
	require.NotContains(t, src, "fastify")
	require.NotContains(t, src, "Fastify")
}

func TestServerSource_Fastify(t *testing.T) {
	src, err := ServerSource(models.FrameworkFastify, "demo")
	require.NoError(t, err)

	require.Contains(t, src, `import Fastify from "fastify"`)
	require.Contains(t, src, "const port = 3000")
	require.Contains(t, src, `app.get("/hello"`)
	require.Contains(t, src, "await app.listen({ port })")
	require.NotContains(t, src, "express")
}

func TestServerSource_UnknownFramework(t *testing.T) {
	_, err := ServerSource(models.Framework("koa"), "demo")
	require.Error(t, err)
}

func TestTestStubSource_HasNoAssertions(t *testing.T) {
	src, err := TestStubSource("demo")
	require.NoError(t, err)
	require.Contains(t, src, "it.todo")
	require.NotContains(t, src, "expect(")
}

func TestServerSource_TrimsName(t *testing.T) {
	src, err := ServerSource(models.FrameworkExpress, "  demo  ")
	require.NoError(t, err)
	require.Contains(t, src, `"demo listening on port "`)
}

func TestSourceSnapshots(t *testing.T) {
	for _, fw := range models.AllFrameworks() {
		t.Run(fw.String(), func(t *testing.T) {
			src, err := ServerSource(fw, "demo")
			require.NoError(t, err)
			snaps.MatchSnapshot(t, src)
		})
	}

	t.Run("test stub", func(t *testing.T) {
		src, err := TestStubSource("demo")
		require.NoError(t, err)
		snaps.MatchSnapshot(t, src)
	})
}

func TestFrameworkImportExclusivity(t *testing.T) {
	express, err := ServerSource(models.FrameworkExpress, "demo")
	require.NoError(t, err)
	fastify, err := ServerSource(models.FrameworkFastify, "demo")
	require.NoError(t, err)

	for _, line := range strings.Split(express, "\n") {
		if strings.HasPrefix(line, "import") {
			require.NotContains(t, line, "fastify")
		}
	}
	for _, line := range strings.Split(fastify, "\n") {
		if strings.HasPrefix(line, "import") {
			require.NotContains(t, line, "express")
		}
	}
}
