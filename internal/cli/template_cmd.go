package cli

import (
	"fmt"

	"github.com/manjulsinghal1410/use-case-maps/internal/cli/formatter"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect plan templates",
	}

	cmd.AddCommand(newTemplateShowCmd(app))

	return cmd
}

func newTemplateShowCmd(app *App) *cobra.Command {
	var fromDatabase bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the consolidated template or the shared database template",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := template.Consolidated
			order := append([]template.StageCode{}, template.DefaultStageOrder...)
			order = append(order, template.StageU6)

			if fromDatabase {
				if app.Remote == nil || !app.Remote.Configured() {
					return fmt.Errorf("shared database is not configured")
				}
				fetched, err := app.Remote.FetchTemplate(cmd.Context())
				if err != nil {
					return fmt.Errorf("loading database template: %w", err)
				}
				templates = make(map[template.StageCode]template.StageTemplate, len(fetched))
				for code, activities := range fetched {
					name := string(code)
					if st, ok := template.Consolidated[code]; ok {
						name = st.Name
					}
					templates[code] = template.StageTemplate{Name: name, Activities: activities}
				}
			}

			fmt.Println(formatter.FormatTemplate(templates, order))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromDatabase, "database", false, "Load the template from the shared database")

	return cmd
}
