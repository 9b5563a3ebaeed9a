package cli

import (
	"fmt"

	"github.com/jakoblorz/create-node-api/internal/config"
	"github.com/jakoblorz/create-node-api/internal/filesystem"
	"github.com/jakoblorz/create-node-api/internal/models"
	"github.com/jakoblorz/create-node-api/internal/scaffold"
	"github.com/jakoblorz/create-node-api/internal/tui/create"
	"github.com/spf13/cobra"
)

// CreateCommand handles the create command
type CreateCommand struct {
	fs        filesystem.FileSystem
	newClient ClientFactory
	cfg       *config.Config

	managerFlag   string
	frameworkFlag string
	skipResolve   bool
	skipInstall   bool
	templatesDir  string
}

// NewCreateCommand creates a new create command
func NewCreateCommand(fs filesystem.FileSystem, newClient ClientFactory, cfg *config.Config) *cobra.Command {
	cmd := &CreateCommand{
		fs:        fs,
		newClient: newClient,
		cfg:       cfg,
	}

	cobraCmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Scaffold a new project",
		Long: `Scaffold a new TypeScript API project.

Unanswered questions are collected interactively; the positional name
argument and flags pre-answer them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.managerFlag, "package-manager", "",
		"Package manager to use (npm, yarn, pnpm)")
	cobraCmd.Flags().StringVar(&cmd.frameworkFlag, "framework", "",
		"Web framework to scaffold (express, fastify)")
	cobraCmd.Flags().BoolVar(&cmd.skipResolve, "skip-resolve", false,
		"Keep pinned dependency versions instead of querying the registry")
	cobraCmd.Flags().BoolVar(&cmd.skipInstall, "skip-install", false,
		"Do not run the package manager install after generation")
	cobraCmd.Flags().StringVar(&cmd.templatesDir, "templates-dir", "",
		"Directory of additional config-file templates")

	return cobraCmd
}

// Run executes the create command
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	runCfg := *c.cfg
	if c.skipResolve {
		runCfg.ResolveVersions = false
	}
	if c.skipInstall {
		runCfg.AutoInstall = false
	}
	if c.templatesDir != "" {
		runCfg.TemplatesDir = c.templatesDir
	}

	preset := create.Preset{}
	if len(args) > 0 {
		preset.Name = args[0]
	}
	if c.managerFlag != "" {
		pm, err := models.ParsePackageManager(c.managerFlag)
		if err != nil {
			return err
		}
		preset.PackageManager = pm
	}
	if c.frameworkFlag != "" {
		fw, err := models.ParseFramework(c.frameworkFlag)
		if err != nil {
			return err
		}
		preset.Framework = fw
	}

	flow := create.NewFlow(&runCfg, preset)
	request, err := flow.Run()
	if err != nil {
		return fmt.Errorf("failed to run prompts: %w", err)
	}

	if request == nil {
		// Operator aborted; nothing was written.
		return nil
	}

	generator := scaffold.NewGenerator(c.fs, c.newClient(request.PackageManager), &runCfg)
	result, err := generator.Run(request)

	if result != nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), create.RenderSuccess(result))
	}

	return err
}
