package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/manjulsinghal1410/use-case-maps/internal/cli/formatter"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/export"
	"github.com/manjulsinghal1410/use-case-maps/internal/schedule"
	"github.com/manjulsinghal1410/use-case-maps/internal/service"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create and manage use case plans",
	}

	cmd.AddCommand(
		newPlanNewCmd(app),
		newPlanListCmd(app),
		newPlanViewCmd(app),
		newPlanEditCmd(app),
		newPlanCloneCmd(app),
		newPlanDeleteCmd(app),
		newPlanExportCmd(app),
	)

	return cmd
}

// planDetails carries the creation-form fields shared by `plan new` and
// `plan clone`.
type planDetails struct {
	name, customer, sa, ae string
	start                  string
	months                 int
	ssa, poc               bool
	user                   string
}

func (d *planDetails) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.name, "name", "", "Use case name")
	cmd.Flags().StringVar(&d.customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&d.sa, "sa", "", "Solution architect name")
	cmd.Flags().StringVar(&d.ae, "ae", "", "Account executive name")
	cmd.Flags().StringVar(&d.start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&d.months, "months", 0, "Expected duration in months (default 6)")
	cmd.Flags().BoolVar(&d.ssa, "ssa", false, "SSA involvement required")
	cmd.Flags().BoolVar(&d.poc, "poc", false, "A POC is happening")
	cmd.Flags().StringVar(&d.user, "user", "", "Registered user creating the plan")
}

// collectInteractive fills in any missing detail fields with a huh form.
func (d *planDetails) collectInteractive() error {
	monthsStr := ""
	if d.months > 0 {
		monthsStr = fmt.Sprintf("%d", d.months)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Use Case Name").
				Placeholder("Churn prediction platform").
				Value(&d.name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Customer").
				Placeholder("Acme Corp").
				Value(&d.customer).
				Validate(validateRequired("customer")),
			huh.NewInput().
				Title("Solution Architect").
				Value(&d.sa).
				Validate(validateRequired("solution architect")),
			huh.NewInput().
				Title("Account Executive").
				Value(&d.ae).
				Validate(validateRequired("account executive")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD, blank for today)").
				Placeholder(time.Now().Format("2006-01-02")).
				Value(&d.start).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return validateDate(s)
				}),
			huh.NewInput().
				Title("Duration (months, blank for 6)").
				Placeholder("6").
				Value(&monthsStr).
				Validate(validateOptionalPositiveInt),
			huh.NewConfirm().
				Title("SSA involvement required?").
				Value(&d.ssa),
			huh.NewConfirm().
				Title("Is a POC happening?").
				Value(&d.poc),
		),
	).WithTheme(ucmapHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}
	if s := strings.TrimSpace(monthsStr); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		d.months = n
	}
	return nil
}

// toRequest resolves the detail fields into a creation request. The user
// flag, when set, must name a registered user.
func (d *planDetails) toRequest(app *App) (service.CreatePlanRequest, error) {
	req := service.CreatePlanRequest{
		Name:              d.name,
		Customer:          d.customer,
		SolutionArchitect: d.sa,
		AccountExecutive:  d.ae,
		DurationMonths:    d.months,
		SSARequired:       d.ssa,
		POCHappening:      d.poc,
		StartDate:         time.Now(),
	}

	if s := strings.TrimSpace(d.start); s != "" {
		start, err := time.Parse("2006-01-02", s)
		if err != nil {
			return req, fmt.Errorf("invalid start date %q: %w", d.start, err)
		}
		req.StartDate = start
	}

	if d.user != "" {
		u, err := app.Users.FindByName(d.user)
		if err != nil {
			return req, err
		}
		req.UserID = u.ID
	}
	return req, nil
}

// actor returns the display name written to remote audit columns.
func (d *planDetails) actor() string {
	if d.user != "" {
		return d.user
	}
	return d.sa
}

func createAndSave(app *App, req service.CreatePlanRequest, actor string) error {
	ctx := context.Background()
	result, err := app.Plans.Create(ctx, req)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Println(formatter.StyleYellow.Render("! ") + w)
	}

	outcome, err := app.Plans.Save(ctx, result.Plan, actor)
	if err != nil {
		return err
	}
	fmt.Println(formatter.FormatSaveOutcome(result.Plan.ID, outcome))
	return nil
}

func newPlanNewCmd(app *App) *cobra.Command {
	var details planDetails
	var source string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a plan from a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if details.name == "" && app.Interactive {
				if err := details.collectInteractive(); err != nil {
					return err
				}
			}

			req, err := details.toRequest(app)
			if err != nil {
				return err
			}
			switch source {
			case "", "consolidated":
				req.Source = template.SourceDefault
			case "database":
				req.Source = template.SourceDatabase
			default:
				return fmt.Errorf("unknown template source %q (use consolidated or database)", source)
			}

			return createAndSave(app, req, details.actor())
		},
	}

	details.bindFlags(cmd)
	cmd.Flags().StringVar(&source, "template", "consolidated", "Template source (consolidated or database)")

	return cmd
}

func newPlanCloneCmd(app *App) *cobra.Command {
	var details planDetails
	var fromPlan, fromMap string

	cmd := &cobra.Command{
		Use:   "clone",
		Short: "Create a plan by cloning an existing plan or a shared map",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromPlan == "" && fromMap == "" {
				return fmt.Errorf("one of --from-plan or --from-map is required")
			}
			if details.name == "" && app.Interactive {
				if err := details.collectInteractive(); err != nil {
					return err
				}
			}

			req, err := details.toRequest(app)
			if err != nil {
				return err
			}
			req.Source = template.SourceClone
			req.ClonePlanID = fromPlan
			req.CloneMapID = fromMap

			return createAndSave(app, req, details.actor())
		},
	}

	details.bindFlags(cmd)
	cmd.Flags().StringVar(&fromPlan, "from-plan", "", "Local plan ID to clone")
	cmd.Flags().StringVar(&fromMap, "from-map", "", "Shared legacy map ID to clone")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List local plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			var plans []domain.Plan
			if user != "" {
				u, err := app.Users.FindByName(user)
				if err != nil {
					return err
				}
				plans, err = app.Plans.ListByUser(u.ID)
				if err != nil {
					return err
				}
			} else {
				all, err := app.Plans.ListAll()
				if err != nil {
					return err
				}
				for _, p := range all {
					plans = append(plans, p)
				}
				sort.Slice(plans, func(i, j int) bool {
					return plans[i].CreatedAt.Before(plans[j].CreatedAt)
				})
			}

			fmt.Println(formatter.FormatPlanList(plans))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Only plans created by this user")

	return cmd
}

func newPlanViewCmd(app *App) *cobra.Command {
	var grid bool

	cmd := &cobra.Command{
		Use:   "view <plan-id>",
		Short: "Show a plan and its derived schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Get(args[0])
			if err != nil {
				return err
			}
			rows := schedule.Derive(plan.StartDate, plan.Stages)

			if grid && app.Interactive {
				return runScheduleGrid(plan, rows)
			}
			fmt.Println(formatter.FormatPlanDetail(&plan, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&grid, "grid", false, "Browse the schedule in an interactive grid")

	return cmd
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a plan from the local store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Get(args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.Interactive {
					return fmt.Errorf("refusing to delete without --yes")
				}
				ok, err := confirmForm(fmt.Sprintf("Delete %q (%s)?", plan.Name, plan.ID))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Plans.Delete(plan.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s. Rows already written to the shared database are kept.\n", plan.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newPlanExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <plan-id>",
		Short: "Export a plan's schedule as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Get(args[0])
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("%s_plan.csv", plan.ID)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			if err := export.WritePlan(f, plan); err != nil {
				return err
			}
			fmt.Printf("Exported %d activities to %s\n", plan.ActivityCount(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default <plan-id>_plan.csv)")

	return cmd
}
