package schedule

import (
	"testing"
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stage(name string, durations ...int) domain.Stage {
	s := domain.Stage{Name: name}
	for i, d := range durations {
		s.Activities = append(s.Activities, domain.Activity{
			Activity:     name + " activity " + string(rune('A'+i)),
			DurationDays: d,
			Status:       domain.ActivityNotStarted,
		})
	}
	return s
}

func TestDerive_SequentialDates(t *testing.T) {
	stages := []domain.Stage{
		stage("U2 - Uncover", 5, 3),
		stage("U3 - Validate", 2),
	}

	rows := Derive(day(2025, time.January, 1), stages)
	require.Len(t, rows, 3)

	// First activity starts on the plan start date.
	assert.Equal(t, day(2025, time.January, 1), rows[0].Start)
	assert.Equal(t, day(2025, time.January, 6), rows[0].End)

	// Each subsequent activity starts the day after the previous end,
	// across stage boundaries too.
	for i := 1; i < len(rows); i++ {
		assert.Equal(t, rows[i-1].End.AddDate(0, 0, 1), rows[i].Start,
			"row %d must start the day after row %d ends", i, i-1)
	}
	assert.Equal(t, day(2025, time.January, 7), rows[1].Start)
	assert.Equal(t, day(2025, time.January, 10), rows[1].End)
	assert.Equal(t, day(2025, time.January, 11), rows[2].Start)
	assert.Equal(t, day(2025, time.January, 13), rows[2].End)
}

func TestDerive_Deterministic(t *testing.T) {
	stages := []domain.Stage{
		stage("U2 - Uncover", 5, 4, 3),
		stage("U3 - Validate", 7),
	}
	start := day(2025, time.March, 15)

	first := Derive(start, stages)
	second := Derive(start, stages)
	assert.Equal(t, first, second)
}

func TestDerive_NonPositiveDurationDefaults(t *testing.T) {
	stages := []domain.Stage{
		stage("U2 - Uncover", 0, -3),
	}

	rows := Derive(day(2025, time.June, 1), stages)
	require.Len(t, rows, 2)

	for i, row := range rows {
		assert.Equal(t, domain.DefaultActivityDays, row.DurationDays, "row %d", i)
		assert.Equal(t, row.Start.AddDate(0, 0, domain.DefaultActivityDays), row.End, "row %d", i)
	}
}

func TestDerive_NoWeekendSkipping(t *testing.T) {
	// Friday start with a 1-day duration must end on Saturday.
	rows := Derive(day(2025, time.January, 3), []domain.Stage{
		stage("U2", 1),
	})
	require.Len(t, rows, 1)
	assert.Equal(t, time.Saturday, rows[0].End.Weekday())
}

func TestDerive_MonthRollover(t *testing.T) {
	rows := Derive(day(2025, time.January, 30), []domain.Stage{
		stage("U2", 5),
	})
	require.Len(t, rows, 1)
	assert.Equal(t, day(2025, time.February, 4), rows[0].End)
}

func TestDerive_StageCodes(t *testing.T) {
	stages := []domain.Stage{
		stage("Kickoff", 1),        // no embedded code, index 0 -> U2
		stage("U5 - Launch", 1),    // embedded code wins over position
		stage("Stage 2 things", 1), // Stage N pattern -> U3
	}

	rows := Derive(day(2025, time.January, 1), stages)
	require.Len(t, rows, 3)
	assert.Equal(t, template.StageU2, rows[0].StageCode)
	assert.Equal(t, template.StageU5, rows[1].StageCode)
	assert.Equal(t, template.StageU3, rows[2].StageCode)
}

func TestDerive_Empty(t *testing.T) {
	assert.Empty(t, Derive(day(2025, time.January, 1), nil))

	// Stages with no activities contribute no rows.
	rows := Derive(day(2025, time.January, 1), []domain.Stage{{Name: "U6 - Expand"}})
	assert.Empty(t, rows)
}

func TestSpan(t *testing.T) {
	_, _, ok := Span(nil)
	assert.False(t, ok)

	rows := Derive(day(2025, time.January, 1), []domain.Stage{
		stage("U2", 5, 5),
	})
	start, end, ok := Span(rows)
	require.True(t, ok)
	assert.Equal(t, day(2025, time.January, 1), start)
	assert.Equal(t, rows[1].End, end)
}
