package pkgmgr

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// outdatedEntry mirrors one value of `npm outdated --json` / `pnpm outdated
// --json`. pnpm reports the dependent project instead of a location.
type outdatedEntry struct {
	Current   string `json:"current"`
	Wanted    string `json:"wanted"`
	Latest    string `json:"latest"`
	Location  string `json:"location"`
	Dependent string `json:"dependent"`
}

// ParseOutdatedJSON decodes the structured outdated report produced by
// `npm outdated --json` and `pnpm outdated --json`. Entries are returned
// sorted by package name for deterministic output.
func ParseOutdatedJSON(data []byte) ([]OutdatedPackage, error) {
	var raw map[string]outdatedEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid outdated JSON: %w", err)
	}

	packages := make([]OutdatedPackage, 0, len(raw))
	for name, entry := range raw {
		location := entry.Location
		if location == "" {
			location = entry.Dependent
		}
		packages = append(packages, OutdatedPackage{
			Name:     name,
			Current:  entry.Current,
			Wanted:   entry.Wanted,
			Latest:   entry.Latest,
			Location: location,
		})
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Name < packages[j].Name
	})

	return packages, nil
}

// ParseOutdatedTable parses the whitespace-delimited tabular outdated
// report: one header line, then one row per package with columns
// name / current / wanted / latest / location. Rows with fewer than four
// columns are skipped.
func ParseOutdatedTable(output string) []OutdatedPackage {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) <= 1 {
		return nil
	}

	var packages []OutdatedPackage
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}

		pkg := OutdatedPackage{
			Name:    fields[0],
			Current: fields[1],
			Wanted:  fields[2],
			Latest:  fields[3],
		}
		if len(fields) > 4 {
			pkg.Location = fields[4]
		}
		packages = append(packages, pkg)
	}

	return packages
}
