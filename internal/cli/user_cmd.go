package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/manjulsinghal1410/use-case-maps/internal/cli/formatter"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage registered users",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserListCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var name, email, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.Interactive {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Name").
							Placeholder("Jordan Lee").
							Value(&name).
							Validate(validateRequired("name")),
						huh.NewInput().
							Title("Email").
							Placeholder("jordan.lee@example.com").
							Value(&email).
							Validate(validateRequired("email")),
						huh.NewSelect[string]().
							Title("Role").
							Options(roleOptions()...).
							Value(&role),
					),
				).WithTheme(ucmapHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			u := &domain.User{
				Name:  name,
				Email: email,
				Role:  domain.UserRole(role),
			}
			if err := app.Users.Add(u); err != nil {
				return err
			}

			fmt.Printf("Registered %s (%s)\n", u.Name, u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&role, "role", "", "Role (Solution Architect, Account Executive, FE Manager, FE Leader)")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List()
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatUserList(users))
			return nil
		},
	}
}
