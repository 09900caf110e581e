package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePlan(t *testing.T) {
	plan := testutil.NewTestPlan("Acme",
		testutil.WithStartDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		testutil.WithStages(
			testutil.NewTestStage("U2 - Uncover", 2),
			testutil.NewTestStage("U3 - Understand", 2),
		),
	)

	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, plan))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5, "header plus one row per activity")

	assert.Equal(t, Columns, records[0])

	first := records[1]
	require.Len(t, first, len(Columns))
	assert.Equal(t, "U2", first[0])
	assert.Equal(t, "U2 - Uncover", first[1])
	assert.Equal(t, "2025-01-01", first[5])
	assert.Equal(t, "2025-01-06", first[6])
	assert.Equal(t, "5", first[7])
	assert.Equal(t, string(domain.ActivityNotStarted), first[8])

	// Reserved columns are always empty.
	for i, rec := range records[1:] {
		assert.Empty(t, rec[9], "row %d dependencies", i)
		assert.Empty(t, rec[10], "row %d deliverables", i)
		assert.Empty(t, rec[11], "row %d notes", i)
	}

	// Dates chain across the stage boundary.
	assert.Equal(t, "2025-01-13", records[3][5])
}

func TestWritePlan_Empty(t *testing.T) {
	plan := testutil.NewTestPlan("Acme")

	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, plan))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
