package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"ACM-2025-01-001", "Churn prediction"},
			{"BET-2025-01-001", "Lakehouse migration"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Churn prediction")

	// Columns align on the widest cell.
	idCol := strings.Index(lines[2], "Churn")
	assert.Equal(t, idCol, strings.Index(lines[3], "Lakehouse"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRowsPad(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderTable_DoesNotMutateRows(t *testing.T) {
	long := strings.Repeat("x", 200)
	rows := [][]string{{"ACM-2025-01-001", long}}

	out := RenderTable([]string{"ID", "NOTES"}, rows)

	assert.NotContains(t, out, long)
	assert.Equal(t, long, rows[0][1], "caller's cells must stay untruncated")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly-te", Truncate("exactly-te", 10))

	got := Truncate("a very long cell value indeed", 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))

	// Styled cells pass through untouched.
	styled := "\x1b[31mred\x1b[0m cell with escapes"
	assert.Equal(t, styled, Truncate(styled, 5))
}
