package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/manjulsinghal1410/use-case-maps/internal/cli/formatter"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
)

// ucmapHuhTheme returns a custom huh theme using the formatter palette.
func ucmapHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

// activityStatusOptions builds huh select options from the canonical
// activity statuses, in a stable order.
func activityStatusOptions() []huh.Option[string] {
	ordered := []domain.ActivityStatus{
		domain.ActivityNotStarted,
		domain.ActivityInProgress,
		domain.ActivityCompleted,
		domain.ActivityBlocked,
		domain.ActivityOnHold,
	}
	opts := make([]huh.Option[string], 0, len(ordered))
	for _, s := range ordered {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return opts
}

func planStatusOptions() []huh.Option[string] {
	ordered := []domain.PlanStatus{
		domain.PlanPlanning,
		domain.PlanInProgress,
		domain.PlanCompleted,
		domain.PlanBlocked,
		domain.PlanOnHold,
	}
	opts := make([]huh.Option[string], 0, len(ordered))
	for _, s := range ordered {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return opts
}

func roleOptions() []huh.Option[string] {
	ordered := []domain.UserRole{
		domain.RoleSolutionArchitect,
		domain.RoleAccountExecutive,
		domain.RoleFEManager,
		domain.RoleFELeader,
	}
	opts := make([]huh.Option[string], 0, len(ordered))
	for _, r := range ordered {
		opts = append(opts, huh.NewOption(string(r), string(r)))
	}
	return opts
}

// confirmForm runs a single yes/no prompt and reports the answer.
func confirmForm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(ucmapHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
