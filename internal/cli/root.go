// Package cli wires the ucmap command tree: plan and user management, the
// template viewer, and shared-database inspection commands.
package cli

import (
	"github.com/manjulsinghal1410/use-case-maps/internal/remote"
	"github.com/manjulsinghal1410/use-case-maps/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces and environment facts CLI commands need.
type App struct {
	Users  service.UserService
	Plans  service.PlanService
	Remote *remote.Client

	// Interactive is true when stdin/stdout are a terminal; commands fall
	// back to flag-only operation otherwise.
	Interactive bool
}

// NewRootCmd creates the top-level "ucmap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ucmap",
		Short:         "Use case planning maps for customer implementations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newUserCmd(app),
		newPlanCmd(app),
		newTemplateCmd(app),
		newDBCmd(app),
	)

	return root
}
