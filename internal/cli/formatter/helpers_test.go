package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
)

func TestPlanStatusPill(t *testing.T) {
	for _, status := range []domain.PlanStatus{
		domain.PlanPlanning,
		domain.PlanInProgress,
		domain.PlanCompleted,
		domain.PlanBlocked,
		domain.PlanOnHold,
	} {
		assert.Contains(t, PlanStatusPill(status), string(status))
	}

	// Unknown statuses render as-is in the fallback style.
	assert.Contains(t, PlanStatusPill(domain.PlanStatus("Archived")), "Archived")
}

func TestActivityStatusPill(t *testing.T) {
	for _, status := range []domain.ActivityStatus{
		domain.ActivityNotStarted,
		domain.ActivityInProgress,
		domain.ActivityCompleted,
		domain.ActivityBlocked,
		domain.ActivityOnHold,
	} {
		assert.Contains(t, ActivityStatusPill(status), string(status))
	}

	assert.Contains(t, ActivityStatusPill(domain.ActivityStatus("Skipped")), "Skipped")
}

func TestStatusStyles(t *testing.T) {
	// Pills carry the same foreground as the cell styles.
	assert.Equal(t, StyleGreen.GetForeground(), PlanStatusStyle(domain.PlanInProgress).GetForeground())
	assert.Equal(t, StyleDim.GetForeground(), PlanStatusStyle(domain.PlanCompleted).GetForeground())
	assert.Equal(t, StyleBlue.GetForeground(), ActivityStatusStyle(domain.ActivityInProgress).GetForeground())
	assert.Equal(t, StyleDim.GetForeground(), ActivityStatusStyle(domain.ActivityNotStarted).GetForeground())
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "--", HumanDate(time.Time{}))
	assert.Equal(t, "Sep 3, 2025", HumanDate(time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)))
}

func TestISODate(t *testing.T) {
	assert.Equal(t, "--", ISODate(time.Time{}))
	assert.Equal(t, "2025-09-03", ISODate(time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)))
}
