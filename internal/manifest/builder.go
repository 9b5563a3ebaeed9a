package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/jakoblorz/create-node-api/internal/models"
)

// InitialVersion is the version every generated project starts at
const InitialVersion = "1.0.0"

// HuskyConfig wires the pre-commit stage into the manifest
type HuskyConfig struct {
	Hooks map[string]string `json:"hooks"`
}

// Manifest is the generated package.json. Top-level key order follows the
// struct declaration; keys inside each map are emitted alphabetically by
// encoding/json, so rendering is deterministic.
type Manifest struct {
	Name            string              `json:"name"`
	Version         string              `json:"version"`
	Scripts         map[string]string   `json:"scripts"`
	Husky           HuskyConfig         `json:"husky"`
	LintStaged      map[string][]string `json:"lint-staged"`
	Dependencies    map[string]string   `json:"dependencies"`
	DevDependencies map[string]string   `json:"devDependencies"`
}

// Build assembles the manifest from the operator's answers and a complete
// dependency set. The dependency maps are copied; the set stays untouched.
func Build(req *models.ProjectRequest, deps *models.DependencySet) *Manifest {
	runner := req.PackageManager.RunnerPrefix()

	runtime := make(map[string]string, len(deps.Runtime))
	for name, version := range deps.Runtime {
		runtime[name] = version
	}
	dev := make(map[string]string, len(deps.Dev))
	for name, version := range deps.Dev {
		dev[name] = version
	}

	return &Manifest{
		Name:    req.Name,
		Version: InitialVersion,
		Scripts: map[string]string{
			"start":     "tsx src/server.ts",
			"build":     "tsup src/server.ts",
			"dev":       "tsx watch src/server.ts",
			"prepare":   runner + " husky install",
			"test":      "jest",
			"test:lint": "eslint src --ext .ts",
		},
		Husky: HuskyConfig{
			Hooks: map[string]string{
				"pre-commit": "lint-staged",
			},
		},
		LintStaged: map[string][]string{
			"*.ts": {
				"eslint --fix",
				"prettier --write",
				"jest --bail --findRelatedTests --passWithNoTests",
			},
		},
		Dependencies:    runtime,
		DevDependencies: dev,
	}
}

// Render serializes the manifest with two-space indentation and validates
// the result against the embedded schema before returning it.
func (m *Manifest) Render() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	data = append(data, '\n')

	if err := Validate(data); err != nil {
		return nil, err
	}

	return data, nil
}
