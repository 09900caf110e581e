// Package schedule derives concrete activity dates from a plan's ordered
// stage list. Derivation is pure: the same start date and activity list
// always produce the same dates, so schedules are recomputed on every read
// instead of being stored.
package schedule

import (
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
)

// Row is one scheduled activity with its derived dates and display labels.
type Row struct {
	StageCode    template.StageCode
	StageName    string
	Activity     string
	Description  string
	Owner        string
	Start        time.Time
	End          time.Time
	DurationDays int
	Status       domain.ActivityStatus
}

// Derive assigns start and end dates to every activity across all stages in
// order. The first activity starts on the plan start date; each subsequent
// activity starts the day after the previous one ends. End = start + duration
// in calendar days, with no weekend or holiday skipping, producing one
// unbroken timeline across stages.
func Derive(startDate time.Time, stages []domain.Stage) []Row {
	var rows []Row
	cursor := startDate
	first := true

	for idx, stage := range stages {
		code := template.StageCodeAt(stage.Name, idx)
		for _, act := range stage.Activities {
			start := cursor
			if !first {
				start = cursor.AddDate(0, 0, 1)
			}
			days := act.EffectiveDuration()
			end := start.AddDate(0, 0, days)

			rows = append(rows, Row{
				StageCode:    code,
				StageName:    stage.Name,
				Activity:     act.Activity,
				Description:  act.Description,
				Owner:        act.Owner,
				Start:        start,
				End:          end,
				DurationDays: days,
				Status:       act.Status,
			})

			cursor = end
			first = false
		}
	}
	return rows
}

// Span returns the first start and last end date of a derived schedule.
// ok is false for an empty schedule.
func Span(rows []Row) (start, end time.Time, ok bool) {
	if len(rows) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return rows[0].Start, rows[len(rows)-1].End, true
}
