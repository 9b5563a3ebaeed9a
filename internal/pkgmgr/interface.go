package pkgmgr

import (
	"context"

	"github.com/jakoblorz/create-node-api/internal/models"
)

// OutdatedPackage is one row of a package manager's outdated report
type OutdatedPackage struct {
	Name     string
	Current  string
	Wanted   string
	Latest   string
	Location string
}

// Client provides an abstraction over package manager invocations for
// testability. One client is bound to one manager (npm, yarn or pnpm).
//
// Latency and success of every method depend on network reachability and
// the manager binary being installed; callers decide per call whether a
// failure is fatal or recoverable.
type Client interface {
	// Manager returns the package manager this client shells out to
	Manager() models.PackageManager

	// LatestVersion queries the registry for the newest published version
	// of a package and returns the trimmed version string
	LatestVersion(pkg string) (string, error)

	// Install runs the manager's install command inside dir
	Install(dir string) error

	// Outdated reports installed packages that lag behind the registry.
	// An empty slice means everything is current.
	Outdated(dir string) ([]OutdatedPackage, error)

	// Update applies pending updates inside dir
	Update(dir string) error

	// WithContext returns a client whose process invocations use ctx
	WithContext(ctx context.Context) Client
}
