package resolver

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/jakoblorz/create-node-api/internal/pkgmgr"
)

// Resolver queries the package registry for the latest version of each
// declared dependency through the chosen package manager.
type Resolver struct {
	client pkgmgr.Client
}

// New creates a Resolver backed by the given package manager client
func New(client pkgmgr.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve queries packages one at a time, in the given order, so the log
// output stays deterministic. A failed or malformed answer is logged and
// the name is omitted from the result; callers fall back to the pinned
// default for missing names. Resolve never aborts on a single failure.
func (r *Resolver) Resolve(names []string) map[string]string {
	resolved := make(map[string]string, len(names))

	for _, name := range names {
		version, err := r.client.LatestVersion(name)
		if err != nil {
			fmt.Printf("Warning: could not resolve %s, keeping pinned default: %v\n", name, err)
			continue
		}

		if _, err := semver.StrictNewVersion(version); err != nil {
			fmt.Printf("Warning: registry returned invalid version %q for %s, keeping pinned default\n", version, name)
			continue
		}

		resolved[name] = "^" + version
	}

	return resolved
}
