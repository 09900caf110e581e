package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// Dim renders s in the dim foreground color.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Bold renders s in the bold foreground style.
func Bold(s string) string {
	return StyleBold.Render(s)
}

// HumanDate renders a date as "Jan 2, 2006", or "--" for the zero time.
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("Jan 2, 2006")
}

// ISODate renders a date as "2006-01-02", or "--" for the zero time.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("2006-01-02")
}

// PlanStatusPill returns a colored status indicator for a plan.
func PlanStatusPill(status domain.PlanStatus) string {
	var symbol string
	switch status {
	case domain.PlanPlanning:
		symbol = "◌"
	case domain.PlanInProgress:
		symbol = "●"
	case domain.PlanCompleted:
		symbol = "✔"
	case domain.PlanBlocked:
		symbol = "▲"
	case domain.PlanOnHold:
		symbol = "○"
	default:
		return PlanStatusStyle(status).Render(string(status))
	}
	return PlanStatusStyle(status).Render(symbol + " " + string(status))
}

// ActivityStatusPill returns a colored status indicator for an activity.
func ActivityStatusPill(status domain.ActivityStatus) string {
	var symbol string
	switch status {
	case domain.ActivityNotStarted:
		symbol = "○"
	case domain.ActivityInProgress:
		symbol = "●"
	case domain.ActivityCompleted:
		symbol = "✔"
	case domain.ActivityBlocked:
		symbol = "▲"
	case domain.ActivityOnHold:
		symbol = "○"
	default:
		return ActivityStatusStyle(status).Render(string(status))
	}
	return ActivityStatusStyle(status).Render(symbol + " " + string(status))
}
