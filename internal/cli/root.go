package cli

import (
	"fmt"

	"github.com/jakoblorz/create-node-api/internal/config"
	"github.com/jakoblorz/create-node-api/internal/filesystem"
	"github.com/jakoblorz/create-node-api/internal/models"
	"github.com/jakoblorz/create-node-api/internal/pkgmgr"
	"github.com/spf13/cobra"
)

// ClientFactory creates a package manager client once the manager is known
type ClientFactory func(models.PackageManager) pkgmgr.Client

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, newClient ClientFactory, cfg *config.Config) *cobra.Command {
	createCmd := NewCreateCommand(fs, newClient, cfg)

	rootCmd := &cobra.Command{
		Use:   "create-node-api [name]",
		Short: "Scaffold a TypeScript API project",
		Long: `An interactive generator for TypeScript API projects.

Answers three questions (project name, package manager, web framework)
and writes a ready-to-develop project with lint, format, test and
pre-commit tooling wired up.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the create flow when no subcommand is provided.
			return createCmd.RunE(createCmd, args)
		},
	}

	rootCmd.Flags().AddFlagSet(createCmd.Flags())

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(NewManagersCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	newClient := func(pm models.PackageManager) pkgmgr.Client {
		return pkgmgr.NewOSClient(pm)
	}

	rootCmd := NewRootCommand(fs, newClient, cfg)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
