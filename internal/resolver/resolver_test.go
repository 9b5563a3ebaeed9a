package resolver

import (
	"errors"
	"testing"

	"github.com/jakoblorz/create-node-api/internal/models"
	"github.com/jakoblorz/create-node-api/internal/pkgmgr"
	"github.com/stretchr/testify/require"
)

func TestResolve_AppliesCaretConstraints(t *testing.T) {
	client := pkgmgr.NewMockClient(models.ManagerNpm)
	client.Versions["express"] = "4.19.2"
	client.Versions["typescript"] = "5.4.5"

	resolved := New(client).Resolve([]string{"express", "typescript"})

	require.Equal(t, "^4.19.2", resolved["express"])
	require.Equal(t, "^5.4.5", resolved["typescript"])
	require.Equal(t, []string{"show express", "show typescript"}, client.Calls)
}

func TestResolve_OmitsFailuresAndKeepsGoing(t *testing.T) {
	client := pkgmgr.NewMockClient(models.ManagerNpm)
	client.Versions["express"] = "4.19.2"
	client.FailVersions["typescript"] = errors.New("exit status 1")

	resolved := New(client).Resolve([]string{"typescript", "express"})

	require.NotContains(t, resolved, "typescript")
	require.Equal(t, "^4.19.2", resolved["express"])
}

func TestResolve_RejectsMalformedVersions(t *testing.T) {
	client := pkgmgr.NewMockClient(models.ManagerNpm)
	client.Versions["express"] = "not-a-version"

	resolved := New(client).Resolve([]string{"express"})
	require.Empty(t, resolved)
}

func TestResolve_PinnedFallbackSurvivesFailedQuery(t *testing.T) {
	client := pkgmgr.NewMockClient(models.ManagerNpm)
	client.FailVersions["typescript"] = errors.New("exit status 1")

	ds := models.NewDependencySet(models.FrameworkExpress, nil)
	ds.ApplyResolved(New(client).Resolve([]string{"typescript"}))

	require.Equal(t, models.PinnedDefault("typescript"), ds.Dev["typescript"])
	require.NotEmpty(t, ds.Dev["typescript"])
}
