package pkgmgr

import (
	"context"
	"fmt"

	"github.com/jakoblorz/create-node-api/internal/models"
)

// MockClient implements Client with scripted results for testing
type MockClient struct {
	ManagerName models.PackageManager

	// Versions maps package names to the version LatestVersion returns
	Versions map[string]string

	// FailVersions maps package names to errors LatestVersion returns,
	// simulating a non-zero exit from the show command
	FailVersions map[string]error

	InstallErr     error
	OutdatedResult []OutdatedPackage
	OutdatedErr    error
	UpdateErr      error

	// Calls records every invocation in order, e.g. "show typescript"
	Calls []string
}

// NewMockClient creates a MockClient for the given manager
func NewMockClient(manager models.PackageManager) *MockClient {
	return &MockClient{
		ManagerName:  manager,
		Versions:     make(map[string]string),
		FailVersions: make(map[string]error),
	}
}

func (m *MockClient) Manager() models.PackageManager {
	return m.ManagerName
}

func (m *MockClient) LatestVersion(pkg string) (string, error) {
	m.Calls = append(m.Calls, "show "+pkg)

	if err, ok := m.FailVersions[pkg]; ok {
		return "", err
	}
	if version, ok := m.Versions[pkg]; ok {
		return version, nil
	}
	return "", fmt.Errorf("no scripted version for %s", pkg)
}

func (m *MockClient) Install(dir string) error {
	m.Calls = append(m.Calls, "install "+dir)
	return m.InstallErr
}

func (m *MockClient) Outdated(dir string) ([]OutdatedPackage, error) {
	m.Calls = append(m.Calls, "outdated "+dir)
	return m.OutdatedResult, m.OutdatedErr
}

func (m *MockClient) Update(dir string) error {
	m.Calls = append(m.Calls, "update "+dir)
	return m.UpdateErr
}

func (m *MockClient) WithContext(ctx context.Context) Client {
	return m
}
