package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/manjulsinghal1410/use-case-maps/internal/cli/formatter"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanEditCmd(app *App) *cobra.Command {
	var (
		planStatus string
		stageIdx   int
		actIdx     int
		actStatus  string
		owner      string
		days       int
		actor      string
	)

	cmd := &cobra.Command{
		Use:   "edit <plan-id>",
		Short: "Edit a plan's status or one of its activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Get(args[0])
			if err != nil {
				return err
			}

			flagged := planStatus != "" || stageIdx > 0
			if !flagged {
				if !app.Interactive {
					return fmt.Errorf("nothing to change; pass --status or --stage/--activity flags")
				}
				if err := editInteractive(&plan); err != nil {
					return err
				}
			} else {
				if planStatus != "" {
					if _, ok := validPlanStatus(planStatus); !ok {
						return fmt.Errorf("unknown plan status %q", planStatus)
					}
					plan.Status = domain.PlanStatus(planStatus)
				}
				if stageIdx > 0 {
					if err := applyActivityFlags(&plan, stageIdx, actIdx, actStatus, owner, days); err != nil {
						return err
					}
				}
			}

			if actor == "" {
				actor = plan.SolutionArchitect
			}
			outcome, err := app.Plans.Save(cmd.Context(), plan, actor)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSaveOutcome(plan.ID, outcome))
			return nil
		},
	}

	cmd.Flags().StringVar(&planStatus, "status", "", "New plan status")
	cmd.Flags().IntVar(&stageIdx, "stage", 0, "Stage number to edit (1-based)")
	cmd.Flags().IntVar(&actIdx, "activity", 0, "Activity number within the stage (1-based)")
	cmd.Flags().StringVar(&actStatus, "activity-status", "", "New activity status")
	cmd.Flags().StringVar(&owner, "owner", "", "New activity owner")
	cmd.Flags().IntVar(&days, "days", 0, "New activity duration in days")
	cmd.Flags().StringVar(&actor, "user", "", "User recorded on the shared database rows")

	return cmd
}

func validPlanStatus(s string) (domain.PlanStatus, bool) {
	for _, v := range []domain.PlanStatus{
		domain.PlanPlanning, domain.PlanInProgress, domain.PlanCompleted,
		domain.PlanBlocked, domain.PlanOnHold,
	} {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// applyActivityFlags edits one activity addressed by 1-based stage and
// activity numbers.
func applyActivityFlags(plan *domain.Plan, stageIdx, actIdx int, status, owner string, days int) error {
	if stageIdx < 1 || stageIdx > len(plan.Stages) {
		return fmt.Errorf("plan has %d stages, no stage %d", len(plan.Stages), stageIdx)
	}
	stage := &plan.Stages[stageIdx-1]
	if actIdx < 1 || actIdx > len(stage.Activities) {
		return fmt.Errorf("stage %q has %d activities, no activity %d", stage.Name, len(stage.Activities), actIdx)
	}
	act := &stage.Activities[actIdx-1]

	if status != "" {
		if !domain.ValidActivityStatuses[status] {
			return fmt.Errorf("unknown activity status %q", status)
		}
		act.Status = domain.ActivityStatus(status)
	}
	if owner != "" {
		act.Owner = owner
	}
	if days > 0 {
		act.DurationDays = days
	}
	return nil
}

// editInteractive walks plan status and a single activity edit through huh
// forms.
func editInteractive(plan *domain.Plan) error {
	choice := ""
	pick := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What do you want to edit?").
				Options(
					huh.NewOption("Plan status", "status"),
					huh.NewOption("An activity", "activity"),
				).
				Value(&choice),
		),
	).WithTheme(ucmapHuhTheme()).WithShowHelp(false)
	if err := pick.Run(); err != nil {
		return err
	}

	if choice == "status" {
		status := string(plan.Status)
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Plan Status").
					Options(planStatusOptions()...).
					Value(&status),
			),
		).WithTheme(ucmapHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return err
		}
		plan.Status = domain.PlanStatus(status)
		return nil
	}

	return editActivityInteractive(plan)
}

func editActivityInteractive(plan *domain.Plan) error {
	if len(plan.Stages) == 0 {
		return fmt.Errorf("plan has no stages")
	}

	stageOpts := make([]huh.Option[int], 0, len(plan.Stages))
	for i, s := range plan.Stages {
		stageOpts = append(stageOpts, huh.NewOption(s.Name, i))
	}
	stagePick := 0
	if err := runSelect("Which Stage?", stageOpts, &stagePick); err != nil {
		return err
	}
	stage := &plan.Stages[stagePick]
	if len(stage.Activities) == 0 {
		return fmt.Errorf("stage %q has no activities", stage.Name)
	}

	actOpts := make([]huh.Option[int], 0, len(stage.Activities))
	for i, a := range stage.Activities {
		actOpts = append(actOpts, huh.NewOption(fmt.Sprintf("%d. %s", i+1, a.Activity), i))
	}
	actPick := 0
	if err := runSelect("Which Activity?", actOpts, &actPick); err != nil {
		return err
	}
	act := &stage.Activities[actPick]

	owner := act.Owner
	daysStr := strconv.Itoa(act.EffectiveDuration())
	status := string(act.Status)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Owner").
				Value(&owner),
			huh.NewInput().
				Title("Duration (days)").
				Value(&daysStr).
				Validate(validateOptionalPositiveInt),
			huh.NewSelect[string]().
				Title("Status").
				Options(activityStatusOptions()...).
				Value(&status),
		),
	).WithTheme(ucmapHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	act.Owner = owner
	act.Status = domain.ActivityStatus(status)
	if s := strings.TrimSpace(daysStr); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			act.DurationDays = n
		}
	}
	return nil
}

func runSelect[T comparable](title string, opts []huh.Option[T], value *T) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[T]().
				Title(title).
				Options(opts...).
				Value(value),
		),
	).WithTheme(ucmapHuhTheme()).WithShowHelp(false)
	return form.Run()
}
