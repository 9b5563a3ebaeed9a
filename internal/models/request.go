package models

import (
	"fmt"
	"strings"
)

// PackageManager represents the package manager used for the generated project
type PackageManager string

const (
	ManagerNpm  PackageManager = "npm"
	ManagerYarn PackageManager = "yarn"
	ManagerPnpm PackageManager = "pnpm"
)

// AllPackageManagers lists the supported package managers in display order
func AllPackageManagers() []PackageManager {
	return []PackageManager{ManagerNpm, ManagerYarn, ManagerPnpm}
}

// IsValid checks if the package manager is supported
func (p PackageManager) IsValid() bool {
	switch p {
	case ManagerNpm, ManagerYarn, ManagerPnpm:
		return true
	default:
		return false
	}
}

// String returns the string representation of PackageManager
func (p PackageManager) String() string {
	return string(p)
}

// RunnerPrefix returns the command prefix used to run a locally installed
// binary (e.g. lint-staged) through this package manager.
func (p PackageManager) RunnerPrefix() string {
	switch p {
	case ManagerYarn:
		return "yarn"
	case ManagerPnpm:
		return "pnpm exec"
	default:
		return "npx"
	}
}

// ParsePackageManager parses a string into a PackageManager
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	if !pm.IsValid() {
		return "", fmt.Errorf("invalid package manager: %s (must be npm, yarn, or pnpm)", s)
	}
	return pm, nil
}

// Framework represents the web framework wired into the generated server
type Framework string

const (
	FrameworkExpress Framework = "express"
	FrameworkFastify Framework = "fastify"
)

// AllFrameworks lists the supported frameworks in display order
func AllFrameworks() []Framework {
	return []Framework{FrameworkExpress, FrameworkFastify}
}

// IsValid checks if the framework is supported
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkExpress, FrameworkFastify:
		return true
	default:
		return false
	}
}

// String returns the string representation of Framework
func (f Framework) String() string {
	return string(f)
}

// ParseFramework parses a string into a Framework
func ParseFramework(s string) (Framework, error) {
	fw := Framework(strings.ToLower(strings.TrimSpace(s)))
	if !fw.IsValid() {
		return "", fmt.Errorf("invalid framework: %s (must be express or fastify)", s)
	}
	return fw, nil
}

// ProjectRequest captures the operator's answers for one scaffolding run.
// It is created once by the prompt flow and never mutated afterwards.
type ProjectRequest struct {
	// Name is the project name, also used as the destination directory
	Name string

	// PackageManager is the manager used for version queries and installs
	PackageManager PackageManager

	// Framework selects the server template and its dependency set
	Framework Framework
}

// NewProjectRequest creates a validated ProjectRequest
func NewProjectRequest(name string, pm PackageManager, fw Framework) (*ProjectRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name cannot be empty")
	}
	if !pm.IsValid() {
		return nil, fmt.Errorf("invalid package manager: %s", pm)
	}
	if !fw.IsValid() {
		return nil, fmt.Errorf("invalid framework: %s", fw)
	}

	return &ProjectRequest{
		Name:           name,
		PackageManager: pm,
		Framework:      fw,
	}, nil
}
