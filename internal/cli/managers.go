package cli

import (
	"fmt"
	"os/exec"

	"github.com/jakoblorz/create-node-api/internal/models"
	"github.com/spf13/cobra"
)

// NewManagersCommand creates the managers command, a small doctor that
// shows which supported package managers are installed.
func NewManagersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "managers",
		Short: "List supported package managers and their availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, pm := range models.AllPackageManagers() {
				path, err := exec.LookPath(pm.String())
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-5s not found\n", pm)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-5s %s\n", pm, path)
			}
			return nil
		},
	}
}
