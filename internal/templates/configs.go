package templates

import (
	"encoding/json"
	"fmt"

	"github.com/jakoblorz/create-node-api/internal/config"
	"github.com/jakoblorz/create-node-api/internal/models"
)

const eslintConfig = `{
  "root": true,
  "parser": "@typescript-eslint/parser",
  "parserOptions": {
    "project": "./tsconfig.json"
  },
  "plugins": ["@typescript-eslint"],
  "extends": [
    "eslint:recommended",
    "plugin:@typescript-eslint/recommended"
  ],
  "rules": {
    "@typescript-eslint/no-unused-vars": "error"
  }
}
`

const tsConfig = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "NodeNext",
    "moduleResolution": "NodeNext",
    "outDir": "./dist",
    "rootDir": "./src",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true
  },
  "include": ["src/**/*"],
  "exclude": ["node_modules", "dist"]
}
`

// ESLintConfig returns the lint rule file content
func ESLintConfig() string {
	return eslintConfig
}

// TSConfig returns the TypeScript compiler config content
func TSConfig() string {
	return tsConfig
}

// prettierRules is marshaled in declaration order for a stable file layout
type prettierRules struct {
	Semi        bool `json:"semi"`
	SingleQuote bool `json:"singleQuote"`
	TabWidth    int  `json:"tabWidth"`
}

// PrettierConfig renders the formatter rule file from the configured
// policy values.
func PrettierConfig(fc config.FormatterConfig) ([]byte, error) {
	data, err := json.MarshalIndent(prettierRules{
		Semi:        fc.Semi,
		SingleQuote: fc.SingleQuote,
		TabWidth:    fc.TabWidth,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render prettier config: %w", err)
	}
	return append(data, '\n'), nil
}

// PreCommitHook returns the husky pre-commit script, invoking lint-staged
// through the chosen package manager's runner.
func PreCommitHook(pm models.PackageManager) string {
	return fmt.Sprintf(`#!/usr/bin/env sh
. "$(dirname -- "$0")/_/husky.sh"

%s lint-staged
`, pm.RunnerPrefix())
}
