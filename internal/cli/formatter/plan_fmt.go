package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/remote"
	"github.com/manjulsinghal1410/use-case-maps/internal/schedule"
	"github.com/manjulsinghal1410/use-case-maps/internal/service"
)

// FormatPlanList renders a table of plans inside a bordered box.
func FormatPlanList(plans []domain.Plan) string {
	if len(plans) == 0 {
		return RenderBox("Use Case Plans", Dim("No plans yet. Run `ucmap plan new` to create one."))
	}

	headers := []string{"ID", "NAME", "CUSTOMER", "STATUS", "START", "ACTIVITIES"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			Dim(p.ID),
			Bold(p.Name),
			p.Customer,
			PlanStatusPill(p.Status),
			HumanDate(p.StartDate),
			strconv.Itoa(p.ActivityCount()),
		})
	}
	return RenderBox("Use Case Plans", RenderTable(headers, rows))
}

// FormatPlanDetail renders the plan metadata card followed by the derived
// schedule table.
func FormatPlanDetail(p *domain.Plan, rows []schedule.Row) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n")
	b.WriteString(Dim(p.ID) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CUSTOMER"), StyleFg.Render(p.Customer)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS  "), PlanStatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SA      "), StyleFg.Render(p.SolutionArchitect)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("AE      "), StyleFg.Render(p.AccountExecutive)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("START   "), StyleFg.Render(HumanDate(p.StartDate))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("MONTHS  "), StyleFg.Render(strconv.Itoa(p.DurationMonths))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SSA     "), yesNo(p.SSARequired)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("POC     "), yesNo(p.POCHappening)))

	if start, end, ok := schedule.Span(rows); ok {
		span := fmt.Sprintf("%s → %s", ISODate(start), ISODate(end))
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SPAN    "), StyleFg.Render(span)))
	}

	meta := lipgloss.NewStyle().Width(48).Render(b.String())
	return RenderBox("", meta) + "\n" + FormatSchedule(rows)
}

// FormatSchedule renders derived schedule rows grouped under stage headings.
func FormatSchedule(rows []schedule.Row) string {
	if len(rows) == 0 {
		return RenderBox("Schedule", Dim("No activities"))
	}

	var b strings.Builder
	headers := []string{"ACTIVITY", "OWNER", "START", "END", "DAYS", "STATUS"}

	stage := ""
	var cells [][]string
	flush := func() {
		if stage == "" {
			return
		}
		b.WriteString(StyleHeader.Render(stage) + "\n")
		b.WriteString(RenderTable(headers, cells) + "\n")
		cells = nil
	}
	for _, r := range rows {
		if r.StageName != stage {
			flush()
			stage = r.StageName
		}
		cells = append(cells, []string{
			r.Activity,
			r.Owner,
			ISODate(r.Start),
			ISODate(r.End),
			strconv.Itoa(r.DurationDays),
			ActivityStatusPill(r.Status),
		})
	}
	flush()

	return RenderBox("Schedule", strings.TrimRight(b.String(), "\n"))
}

// FormatRemoteIndex renders the shared database plan index.
func FormatRemoteIndex(entries []remote.IndexEntry) string {
	if len(entries) == 0 {
		return RenderBox("Shared Plans", Dim("No plans found in the shared database."))
	}

	headers := []string{"ID", "NAME", "CUSTOMER", "ACTIVITIES", "START", "END", "SOURCE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		source := StyleGreen.Render("current")
		if e.Legacy {
			source = Dim("legacy")
		}
		rows = append(rows, []string{
			Dim(e.ID),
			Bold(e.Name),
			e.Customer,
			strconv.Itoa(e.ActivityCount),
			e.StartDate,
			e.EndDate,
			source,
		})
	}
	return RenderBox("Shared Plans", RenderTable(headers, rows))
}

// FormatUserList renders a table of registered users.
func FormatUserList(users []domain.User) string {
	if len(users) == 0 {
		return RenderBox("Users", Dim("No users yet. Run `ucmap user add` to register one."))
	}

	headers := []string{"NAME", "EMAIL", "ROLE", "SINCE"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			Bold(u.Name),
			u.Email,
			string(u.Role),
			HumanDate(u.CreatedAt),
		})
	}
	return RenderBox("Users", RenderTable(headers, rows))
}

// FormatSaveOutcome renders a one-line summary of a dual-write save.
func FormatSaveOutcome(planID string, out service.SaveOutcome) string {
	switch {
	case out.FullySaved():
		return StyleGreen.Render("✔ ") + fmt.Sprintf("Saved %s locally and to the shared database (%d rows).", Bold(planID), out.RowCount)
	case out.LocalOnly():
		msg := StyleYellow.Render("● ") + fmt.Sprintf("Saved %s locally. ", Bold(planID))
		if out.Remote == service.WriteSkipped {
			return msg + Dim("Shared database not configured; skipped.")
		}
		reason := ""
		if out.RemoteErr != nil {
			reason = ": " + out.RemoteErr.Error()
		}
		return msg + StyleYellow.Render("Shared database write failed"+reason)
	default:
		return StyleRed.Render("✖ ") + "Save failed."
	}
}

func yesNo(v bool) string {
	if v {
		return StyleGreen.Render("Yes")
	}
	return Dim("No")
}
