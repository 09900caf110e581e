package template

import (
	"context"
	"errors"
	"testing"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseOpts = ResolveOptions{
	SolutionArchitect: "Ana Flores",
	AccountExecutive:  "Ben Ochieng",
}

func countConditional(cond Conditional) int {
	n := 0
	for _, code := range DefaultStageOrder {
		for _, a := range Consolidated[code].Activities {
			if a.Conditional == cond {
				n++
			}
		}
	}
	return n
}

func totalActivities(stages []domain.Stage) int {
	n := 0
	for _, s := range stages {
		n += len(s.Activities)
	}
	return n
}

func TestResolveDefault_ConditionalFiltering(t *testing.T) {
	always := countConditional(CondNone)
	ssa := countConditional(CondSSA)
	poc := countConditional(CondPOC)
	require.Positive(t, ssa)
	require.Positive(t, poc)

	tests := []struct {
		name string
		ssa  bool
		poc  bool
		want int
	}{
		{"neither flag", false, false, always},
		{"ssa only", true, false, always + ssa},
		{"poc only", false, true, always + poc},
		{"both flags", true, true, always + ssa + poc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOpts
			opts.SSARequired = tt.ssa
			opts.POCHappening = tt.poc
			stages := ResolveDefault(opts)
			assert.Equal(t, tt.want, totalActivities(stages))
		})
	}
}

func TestResolveDefault_StageOrderAndNames(t *testing.T) {
	stages := ResolveDefault(baseOpts)
	require.Len(t, stages, len(DefaultStageOrder))

	assert.Equal(t, "U2 - Uncover", stages[0].Name)
	assert.Equal(t, "U3 - Understand", stages[1].Name)
	for i, code := range DefaultStageOrder {
		assert.Equal(t, StageName(Consolidated, code), stages[i].Name)
	}
}

func TestResolveDefault_DefaultsAttached(t *testing.T) {
	stages := ResolveDefault(baseOpts)
	for _, s := range stages {
		for _, a := range s.Activities {
			assert.Equal(t, domain.DefaultActivityDays, a.DurationDays)
			assert.Equal(t, domain.ActivityNotStarted, a.Status)
		}
	}
}

func TestResolveDefault_OwnerSubstitution(t *testing.T) {
	stages := ResolveDefault(baseOpts)
	for _, s := range stages {
		for _, a := range s.Activities {
			assert.NotEqual(t, "SA", a.Owner)
			assert.NotEqual(t, "AE", a.Owner)
		}
	}

	// "SA/SA Manager" keeps its compound segment.
	found := false
	for _, a := range stages[0].Activities {
		if a.Owner == "Ana Flores/SA Manager" {
			found = true
		}
	}
	assert.True(t, found, "compound owner segment must survive substitution")
}

type stubFetcher struct {
	templates map[StageCode][]TemplateActivity
	err       error
}

func (f *stubFetcher) FetchTemplate(ctx context.Context) (map[StageCode][]TemplateActivity, error) {
	return f.templates, f.err
}

func TestResolveDatabase(t *testing.T) {
	t.Run("nil fetcher falls back with warning", func(t *testing.T) {
		stages, warning := ResolveDatabase(context.Background(), nil, baseOpts)
		assert.NotEmpty(t, warning)
		assert.Equal(t, ResolveDefault(baseOpts), stages)
	})

	t.Run("fetch error falls back with warning", func(t *testing.T) {
		f := &stubFetcher{err: errors.New("connection refused")}
		stages, warning := ResolveDatabase(context.Background(), f, baseOpts)
		assert.NotEmpty(t, warning)
		assert.Equal(t, ResolveDefault(baseOpts), stages)
	})

	t.Run("empty template falls back with warning", func(t *testing.T) {
		f := &stubFetcher{templates: map[StageCode][]TemplateActivity{}}
		stages, warning := ResolveDatabase(context.Background(), f, baseOpts)
		assert.NotEmpty(t, warning)
		assert.Equal(t, ResolveDefault(baseOpts), stages)
	})

	t.Run("fetched template materializes in stage order", func(t *testing.T) {
		f := &stubFetcher{templates: map[StageCode][]TemplateActivity{
			StageU3: {{Outcome: "Validate architecture", Owner: "SA"}},
			StageU2: {
				{Outcome: "Confirm scope", Owner: "AE"},
				{Outcome: "Scope the POC", Owner: "SA", Conditional: CondPOC},
			},
		}}
		stages, warning := ResolveDatabase(context.Background(), f, baseOpts)
		assert.Empty(t, warning)
		require.Len(t, stages, 2)
		assert.Equal(t, "U2", stages[0].Name)
		require.Len(t, stages[0].Activities, 1)
		assert.Equal(t, "Ben Ochieng", stages[0].Activities[0].Owner)
		assert.Equal(t, "U3", stages[1].Name)
	})
}

func TestResolveClone(t *testing.T) {
	rows := []CloneActivity{
		{Stage: "U3 - Validate", Outcome: "Run workshop", Owner: "SA"},
		{Stage: "U2 - Uncover", Outcome: "Confirm scope", Owner: "AE", Questions: "Who signs off?"},
		{Stage: "U2 - Uncover", Outcome: "Initial sizing", Owner: "SA"},
	}

	stages := ResolveClone(rows, baseOpts)
	require.Len(t, stages, 2)

	// Stage labels are ordered lexically.
	assert.Equal(t, "U2 - Uncover", stages[0].Name)
	assert.Equal(t, "U3 - Validate", stages[1].Name)
	require.Len(t, stages[0].Activities, 2)

	// Every cloned activity is schedule-fresh.
	for _, s := range stages {
		for _, a := range s.Activities {
			assert.Equal(t, domain.DefaultActivityDays, a.DurationDays)
			assert.Equal(t, domain.ActivityNotStarted, a.Status)
		}
	}

	assert.Equal(t, "Ben Ochieng", stages[0].Activities[0].Owner)
	assert.Equal(t, "Who signs off?", stages[0].Activities[0].Description)

	assert.Empty(t, ResolveClone(nil, baseOpts))
}
