package scaffold

import (
	"fmt"

	"github.com/jakoblorz/create-node-api/internal/pkgmgr"
)

// Installer runs the post-generation convenience stages: install the
// declared dependencies, then check for and apply pending updates. Each
// stage logs its own outcome; nothing already written to disk is rolled
// back when a stage fails.
type Installer struct {
	client pkgmgr.Client
}

// NewInstaller creates an Installer backed by the given client
func NewInstaller(client pkgmgr.Client) *Installer {
	return &Installer{client: client}
}

// Run installs dependencies inside dir and applies updates when the
// outdated report has entries. An install or update failure is returned so
// the process can exit non-zero; a failed outdated query is only logged,
// since the generated project is already complete at that point.
func (i *Installer) Run(dir string) error {
	fmt.Printf("Installing dependencies with %s...\n", i.client.Manager())
	if err := i.client.Install(dir); err != nil {
		return fmt.Errorf("dependency installation failed: %w", err)
	}
	fmt.Println("Dependencies installed")

	outdated, err := i.client.Outdated(dir)
	if err != nil {
		fmt.Printf("Warning: could not check for outdated packages: %v\n", err)
		return nil
	}

	if len(outdated) == 0 {
		fmt.Println("All packages are up to date")
		return nil
	}

	fmt.Printf("Found %d outdated package(s):\n", len(outdated))
	for _, pkg := range outdated {
		fmt.Printf("  %s %s -> %s\n", pkg.Name, pkg.Current, pkg.Latest)
	}

	if err := i.client.Update(dir); err != nil {
		return fmt.Errorf("dependency update failed: %w", err)
	}
	fmt.Println("Packages updated")

	return nil
}
