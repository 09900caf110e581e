package cli

import (
	"errors"
	"fmt"

	"github.com/manjulsinghal1410/use-case-maps/internal/cli/formatter"
	"github.com/manjulsinghal1410/use-case-maps/internal/remote"
	"github.com/spf13/cobra"
)

func newDBCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect the shared database",
	}

	cmd.AddCommand(
		newDBStatusCmd(app),
		newDBMapsCmd(app),
	)

	return cmd
}

func newDBStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check shared database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Remote == nil || !app.Remote.Configured() {
				fmt.Println(formatter.StyleYellow.Render("○ Not configured.") +
					formatter.Dim(" Set UCMAP_DB_HOST, UCMAP_DB_NAME, UCMAP_DB_USER and UCMAP_DB_PASSWORD to enable shared saves."))
				return nil
			}

			if err := app.Remote.Ping(cmd.Context()); err != nil {
				fmt.Println(formatter.StyleRed.Render("✖ Unreachable: ") + err.Error())
				return nil
			}
			fmt.Println(formatter.StyleGreen.Render("✔ Connected."))
			return nil
		},
	}
}

func newDBMapsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "maps",
		Short: "List plans stored in the shared database",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Plans.RemoteIndex(cmd.Context())
			if err != nil {
				if errors.Is(err, remote.ErrNotConfigured) {
					fmt.Println(formatter.Dim("Shared database is not configured."))
					return nil
				}
				return err
			}
			fmt.Println(formatter.FormatRemoteIndex(entries))
			return nil
		},
	}
}
