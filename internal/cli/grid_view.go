package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manjulsinghal1410/use-case-maps/internal/cli/formatter"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/schedule"
)

// Scrolling itself is handled by the viewport's default keymap; only quit
// needs an explicit binding.
type gridKeyMap struct {
	Quit key.Binding
}

var gridKeys = gridKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// gridModel is a read-only scrollable view of a plan's derived schedule.
type gridModel struct {
	plan     domain.Plan
	rows     []schedule.Row
	viewport viewport.Model
	ready    bool
}

func newGridModel(plan domain.Plan, rows []schedule.Row) gridModel {
	return gridModel{plan: plan, rows: rows}
}

func (m gridModel) Init() tea.Cmd {
	return nil
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, gridKeys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.contentView())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m gridModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m gridModel) headerView() string {
	title := formatter.StyleHeader.Render(m.plan.Name) + "  " + formatter.Dim(m.plan.ID)
	if start, end, ok := schedule.Span(m.rows); ok {
		title += "  " + formatter.Dim(fmt.Sprintf("%s → %s", formatter.ISODate(start), formatter.ISODate(end)))
	}
	return title
}

func (m gridModel) footerView() string {
	pct := m.viewport.ScrollPercent() * 100
	return formatter.Dim(fmt.Sprintf("↑/↓ scroll · q quit · %3.0f%%", pct))
}

func (m gridModel) contentView() string {
	headers := []string{"STAGE", "ACTIVITY", "OWNER", "START", "END", "DAYS", "STATUS"}
	cells := make([][]string, 0, len(m.rows))
	for _, r := range m.rows {
		cells = append(cells, []string{
			string(r.StageCode),
			r.Activity,
			r.Owner,
			formatter.ISODate(r.Start),
			formatter.ISODate(r.End),
			strconv.Itoa(r.DurationDays),
			formatter.ActivityStatusPill(r.Status),
		})
	}
	return formatter.RenderTable(headers, cells)
}

// runScheduleGrid opens the interactive schedule viewer and blocks until
// the user quits it.
func runScheduleGrid(plan domain.Plan, rows []schedule.Row) error {
	if len(rows) == 0 {
		fmt.Println(formatter.Dim("No activities"))
		return nil
	}
	p := tea.NewProgram(newGridModel(plan, rows), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running schedule view: %w", err)
	}
	return nil
}
