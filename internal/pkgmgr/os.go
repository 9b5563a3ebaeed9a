package pkgmgr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jakoblorz/create-node-api/internal/models"
)

// OSClient implements Client by running the real package manager binary
type OSClient struct {
	manager models.PackageManager
	ctx     context.Context
}

// NewOSClient creates a client for the given package manager
func NewOSClient(manager models.PackageManager) *OSClient {
	return &OSClient{
		manager: manager,
		ctx:     context.Background(),
	}
}

// WithContext returns a new client with the given context
func (c *OSClient) WithContext(ctx context.Context) Client {
	return &OSClient{
		manager: c.manager,
		ctx:     ctx,
	}
}

// Manager returns the package manager this client shells out to
func (c *OSClient) Manager() models.PackageManager {
	return c.manager
}

// LatestVersion runs `<mgr> show <pkg> version` and returns the trimmed
// stdout. A non-zero exit surfaces as an error with stderr attached.
func (c *OSClient) LatestVersion(pkg string) (string, error) {
	cmd := exec.CommandContext(c.ctx, c.manager.String(), "show", pkg, "version")

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to query version of %s: %w: %s", pkg, err, strings.TrimSpace(stderr.String()))
	}

	version := strings.TrimSpace(out.String())
	if version == "" {
		return "", fmt.Errorf("empty version answer for %s", pkg)
	}

	return version, nil
}

// Install runs the manager's install command inside dir, streaming output
// to the operator's terminal.
func (c *OSClient) Install(dir string) error {
	cmd := exec.CommandContext(c.ctx, c.manager.String(), "install")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s install failed: %w", c.manager, err)
	}

	return nil
}

// Outdated reports packages lagging behind the registry. npm and pnpm are
// queried with --json and decoded structurally; yarn has no stable JSON
// mode for this command, so its tabular output is parsed instead.
//
// npm exits non-zero when outdated packages exist, so a process error with
// parseable stdout is not a failure.
func (c *OSClient) Outdated(dir string) ([]OutdatedPackage, error) {
	args := []string{"outdated"}
	structured := c.manager != models.ManagerYarn
	if structured {
		args = append(args, "--json")
	}

	cmd := exec.CommandContext(c.ctx, c.manager.String(), args...)
	cmd.Dir = dir

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	output := strings.TrimSpace(out.String())
	if output == "" {
		if runErr != nil {
			return nil, fmt.Errorf("%s outdated failed: %w: %s", c.manager, runErr, strings.TrimSpace(stderr.String()))
		}
		return nil, nil
	}

	if structured {
		packages, err := ParseOutdatedJSON([]byte(output))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s outdated output: %w", c.manager, err)
		}
		return packages, nil
	}

	return ParseOutdatedTable(output), nil
}

// Update applies pending updates inside dir
func (c *OSClient) Update(dir string) error {
	cmd := exec.CommandContext(c.ctx, c.manager.String(), "update")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s update failed: %w", c.manager, err)
	}

	return nil
}
