package formatter

import (
	"strings"

	"github.com/manjulsinghal1410/use-case-maps/internal/template"
)

// FormatTemplate renders the consolidated template stage by stage.
func FormatTemplate(templates map[template.StageCode]template.StageTemplate, order []template.StageCode) string {
	headers := []string{"OUTCOME", "OWNER", "WHEN"}

	var b strings.Builder
	for _, code := range order {
		st, ok := templates[code]
		if !ok {
			continue
		}
		b.WriteString(StyleHeader.Render(template.StageName(templates, code)))
		if st.Description != "" {
			b.WriteString("  " + Dim(st.Description))
		}
		b.WriteString("\n")

		if len(st.Activities) == 0 {
			b.WriteString(Dim("No template activities") + "\n\n")
			continue
		}

		rows := make([][]string, 0, len(st.Activities))
		for _, a := range st.Activities {
			rows = append(rows, []string{a.Outcome, a.Owner, conditionalBadge(a.Conditional)})
		}
		b.WriteString(RenderTable(headers, rows) + "\n")
	}
	return RenderBox("Consolidated Template", strings.TrimRight(b.String(), "\n"))
}

func conditionalBadge(c template.Conditional) string {
	switch c {
	case template.CondSSA:
		return StyleYellow.Render("SSA only")
	case template.CondPOC:
		return StyleYellow.Render("POC only")
	default:
		return Dim("always")
	}
}
