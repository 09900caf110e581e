package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
)

// Palette loosely based on the Databricks brand colors.
var (
	ColorGreen  = lipgloss.Color("#00c853")
	ColorYellow = lipgloss.Color("#ff9800")
	ColorRed    = lipgloss.Color("#ff3621")
	ColorBlue   = lipgloss.Color("#2196f3")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#e8e8e8")
	ColorHeader = lipgloss.Color("#ff3621")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ActivityStatusStyle returns the style for an activity status cell.
func ActivityStatusStyle(status domain.ActivityStatus) lipgloss.Style {
	switch status {
	case domain.ActivityCompleted:
		return StyleGreen
	case domain.ActivityInProgress:
		return StyleBlue
	case domain.ActivityBlocked:
		return StyleRed
	case domain.ActivityOnHold:
		return StyleYellow
	default:
		return StyleDim
	}
}

// PlanStatusStyle returns the style for a plan status cell.
func PlanStatusStyle(status domain.PlanStatus) lipgloss.Style {
	switch status {
	case domain.PlanPlanning:
		return StyleBlue
	case domain.PlanInProgress:
		return StyleGreen
	case domain.PlanBlocked:
		return StyleRed
	case domain.PlanOnHold:
		return StyleYellow
	default:
		return StyleDim
	}
}
