package create

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/create-node-api/internal/config"
	"github.com/jakoblorz/create-node-api/internal/models"
	"github.com/jakoblorz/create-node-api/internal/tui"
)

// Preset carries answers supplied before prompting, from the positional
// argument or flags. Questions already answered are skipped.
type Preset struct {
	Name           string
	PackageManager models.PackageManager
	Framework      models.Framework
}

// Flow collects the three answers of a scaffolding run through huh forms.
type Flow struct {
	defaults *config.Config
	preset   Preset
	theme    *huh.Theme
}

// NewFlow constructs a Flow. Config defaults preselect the package manager
// and framework options.
func NewFlow(defaults *config.Config, preset Preset) *Flow {
	return &Flow{
		defaults: defaults,
		preset:   preset,
		theme:    tui.NewHuhTheme(),
	}
}

// Run executes the forms sequentially and returns a fully populated
// request. A user abort returns a nil request with no error; no partial
// request is ever produced.
func (f *Flow) Run() (*models.ProjectRequest, error) {
	name, err := f.inputName()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	manager, err := f.selectManager()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	framework, err := f.selectFramework()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	return models.NewProjectRequest(name, manager, framework)
}

func (f *Flow) inputName() (string, error) {
	if strings.TrimSpace(f.preset.Name) != "" {
		return strings.TrimSpace(f.preset.Name), nil
	}

	name := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Value(&name).
				Placeholder("my-api").
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					return nil
				}),
		).
			Title("Project Name").
			Description("Also used as the destination directory."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

func (f *Flow) selectManager() (models.PackageManager, error) {
	if f.preset.PackageManager != "" {
		return f.preset.PackageManager, nil
	}

	selected := f.defaults.PackageManager

	opts := make([]huh.Option[string], 0, len(models.AllPackageManagers()))
	for _, pm := range models.AllPackageManagers() {
		opts = append(opts, huh.NewOption(pm.String(), pm.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Package Manager").
			Description("Used for version queries and installs."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return "", err
	}

	return models.ParsePackageManager(selected)
}

func (f *Flow) selectFramework() (models.Framework, error) {
	if f.preset.Framework != "" {
		return f.preset.Framework, nil
	}

	selected := f.defaults.Framework

	opts := []huh.Option[string]{
		huh.NewOption("express — minimalist, battle-tested", models.FrameworkExpress.String()),
		huh.NewOption("fastify — schema-first, faster JSON", models.FrameworkFastify.String()),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Web Framework").
			Description("Selects the server template and dependencies."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return "", err
	}

	return models.ParseFramework(selected)
}
