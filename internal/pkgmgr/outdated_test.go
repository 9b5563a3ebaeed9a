package pkgmgr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOutdatedJSON(t *testing.T) {
	data := []byte(`{
  "typescript": {
    "current": "5.3.3",
    "wanted": "5.4.5",
    "latest": "5.4.5",
    "location": "node_modules/typescript"
  },
  "express": {
    "current": "4.18.2",
    "wanted": "4.19.2",
    "latest": "4.19.2",
    "dependent": "demo"
  }
}`)

	packages, err := ParseOutdatedJSON(data)
	require.NoError(t, err)
	require.Len(t, packages, 2)

	// Sorted by name
	require.Equal(t, "express", packages[0].Name)
	require.Equal(t, "4.18.2", packages[0].Current)
	require.Equal(t, "4.19.2", packages[0].Latest)
	require.Equal(t, "demo", packages[0].Location, "pnpm's dependent field fills location")

	require.Equal(t, "typescript", packages[1].Name)
	require.Equal(t, "node_modules/typescript", packages[1].Location)
}

func TestParseOutdatedJSON_Invalid(t *testing.T) {
	_, err := ParseOutdatedJSON([]byte("not json"))
	require.Error(t, err)
}

func TestParseOutdatedTable(t *testing.T) {
	output := `Package     Current  Wanted  Latest  Location
typescript  5.3.3    5.4.5   5.4.5   node_modules/typescript
express     4.18.2   4.19.2  4.19.2  node_modules/express
badline`

	packages := ParseOutdatedTable(output)
	require.Len(t, packages, 2)
	require.Equal(t, "typescript", packages[0].Name)
	require.Equal(t, "5.3.3", packages[0].Current)
	require.Equal(t, "5.4.5", packages[0].Wanted)
	require.Equal(t, "5.4.5", packages[0].Latest)
	require.Equal(t, "node_modules/typescript", packages[0].Location)
	require.Equal(t, "express", packages[1].Name)
}

func TestParseOutdatedTable_HeaderOnly(t *testing.T) {
	require.Empty(t, ParseOutdatedTable("Package  Current  Wanted  Latest  Location"))
	require.Empty(t, ParseOutdatedTable(""))
}
