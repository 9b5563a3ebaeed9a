package create

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/create-node-api/internal/scaffold"
	"github.com/jakoblorz/create-node-api/internal/tui"
)

// RenderSuccess renders a summary after a successful scaffolding run.
func RenderSuccess(result *scaffold.Result) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✓ Project Created"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Scaffolded %s (%s, %s) with %d file(s):\n",
		result.Request.Name, result.Request.Framework, result.Request.PackageManager, len(result.WrittenFiles)))
	for _, file := range result.WrittenFiles {
		b.WriteString(fmt.Sprintf("  %s\n", file))
	}

	if result.ResolvedCount > 0 {
		b.WriteString(fmt.Sprintf("\nResolved %d dependency version(s) from the registry\n", result.ResolvedCount))
	}

	b.WriteString("\nNext steps:\n")
	b.WriteString(fmt.Sprintf("  cd %s\n", result.Destination))
	if !result.Installed {
		b.WriteString(fmt.Sprintf("  %s install\n", result.Request.PackageManager))
	}
	b.WriteString(fmt.Sprintf("  %s run dev\n", result.Request.PackageManager))

	return b.String()
}
