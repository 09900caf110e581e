package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colGap      = 2
	maxCellChar = 60
)

// RenderTable renders headers and rows as an aligned plain-text table.
// Cell widths are measured with lipgloss so styled cells line up, and
// long cells are truncated with an ellipsis.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	measure := func(row []string) {
		for i := range widths {
			if i >= len(row) {
				continue
			}
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	// Truncation happens on a copy; the caller's rows stay intact.
	cells := make([][]string, len(rows))
	for i := range rows {
		cells[i] = make([]string, len(rows[i]))
		for j, cell := range rows[i] {
			cells[i][j] = Truncate(cell, maxCellChar)
		}
		measure(cells[i])
	}

	var b strings.Builder
	writeRow := func(row []string, style func(...string) string) {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rendered := cell
			if style != nil {
				rendered = style(cell)
			}
			b.WriteString(rendered)
			if i == len(widths)-1 {
				break
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
		b.WriteString("\n")
	}

	writeRow(headers, StyleHeader.Render)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeRow(sep, StyleDim.Render)

	for _, row := range cells {
		writeRow(row, nil)
	}
	return b.String()
}

// Truncate shortens s to at most n visible characters, appending an
// ellipsis when anything was cut. Cells that carry ANSI styling are
// left alone; truncating inside an escape sequence corrupts it.
func Truncate(s string, n int) string {
	if strings.Contains(s, "\x1b") {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
