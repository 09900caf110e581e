// Package export renders a plan's derived schedule as CSV with the fixed
// column layout of the consolidated MAP spreadsheet.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/schedule"
)

// Columns is the fixed CSV header. Dependencies and Deliverables are
// reserved and always written empty.
var Columns = []string{
	"ID",
	"Stage",
	"Activity",
	"Description",
	"Owner",
	"Start Date",
	"End Date",
	"Duration (Days)",
	"Status",
	"Dependencies",
	"Deliverables",
	"Notes",
}

const dateLayout = "2006-01-02"

// WritePlan derives the plan's schedule and writes one CSV row per activity.
func WritePlan(w io.Writer, plan domain.Plan) error {
	rows := schedule.Derive(plan.StartDate, plan.Stages)

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			string(row.StageCode),
			row.StageName,
			row.Activity,
			row.Description,
			row.Owner,
			row.Start.Format(dateLayout),
			row.End.Format(dateLayout),
			strconv.Itoa(row.DurationDays),
			string(row.Status),
			"", // Dependencies
			"", // Deliverables
			"", // Notes
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
