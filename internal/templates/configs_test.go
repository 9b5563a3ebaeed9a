package templates

import (
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/create-node-api/internal/config"
	"github.com/jakoblorz/create-node-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestESLintConfig_IsValidJSON(t *testing.T) {
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(ESLintConfig()), &parsed))
	require.Equal(t, "@typescript-eslint/parser", parsed["parser"])

	rules := parsed["rules"].(map[string]interface{})
	require.Equal(t, "error", rules["@typescript-eslint/no-unused-vars"])
}

func TestTSConfig_IsValidJSON(t *testing.T) {
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(TSConfig()), &parsed))

	opts := parsed["compilerOptions"].(map[string]interface{})
	require.Equal(t, true, opts["strict"])
	require.Equal(t, "ES2022", opts["target"])
}

func TestPrettierConfig_UsesPolicyValues(t *testing.T) {
	data, err := PrettierConfig(config.FormatterConfig{
		Semi:        true,
		SingleQuote: true,
		TabWidth:    4,
	})
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Equal(t, true, parsed["semi"])
	require.Equal(t, true, parsed["singleQuote"])
	require.Equal(t, float64(4), parsed["tabWidth"])
}

func TestPreCommitHook_PerManager(t *testing.T) {
	require.Contains(t, PreCommitHook(models.ManagerNpm), "npx lint-staged")
	require.Contains(t, PreCommitHook(models.ManagerYarn), "yarn lint-staged")
	require.Contains(t, PreCommitHook(models.ManagerPnpm), "pnpm exec lint-staged")
}

func TestConfigSnapshots(t *testing.T) {
	t.Run("eslint", func(t *testing.T) {
		snaps.MatchSnapshot(t, ESLintConfig())
	})

	t.Run("tsconfig", func(t *testing.T) {
		snaps.MatchSnapshot(t, TSConfig())
	})

	t.Run("prettier defaults", func(t *testing.T) {
		data, err := PrettierConfig(config.Default().Formatter)
		require.NoError(t, err)
		snaps.MatchSnapshot(t, string(data))
	})

	t.Run("pre-commit hook", func(t *testing.T) {
		snaps.MatchSnapshot(t, PreCommitHook(models.ManagerPnpm))
	})
}
