package template

import (
	"context"
	"sort"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
)

// Source selects where a new plan's initial activities come from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceDatabase Source = "database"
	SourceClone    Source = "clone"
)

// ResolveOptions carries the conditional flags and resolved role names used
// while materializing a template.
type ResolveOptions struct {
	SSARequired       bool
	POCHappening      bool
	SolutionArchitect string
	AccountExecutive  string
}

// Fetcher retrieves a stage-keyed template from the remote store.
type Fetcher interface {
	FetchTemplate(ctx context.Context) (map[StageCode][]TemplateActivity, error)
}

// CloneActivity is one source row when cloning an existing plan: the raw
// stage label plus the activity text fields. Duration and status from the
// source are deliberately not carried over.
type CloneActivity struct {
	Stage     string
	Outcome   string
	Questions string
	Owner     string
}

// included applies the conditional inclusion rule: ssa-tagged activities need
// SSARequired, poc-tagged need POCHappening, untagged are always included.
func included(cond Conditional, opts ResolveOptions) bool {
	switch cond {
	case CondSSA:
		return opts.SSARequired
	case CondPOC:
		return opts.POCHappening
	default:
		return true
	}
}

// materialize expands a stage-keyed candidate map into ordered stages,
// filtering conditionals, substituting role tokens, and attaching the default
// duration and status. Stages with no surviving activities are omitted; an
// empty result is valid.
func materialize(candidates map[StageCode][]TemplateActivity, order []StageCode, nameFor func(StageCode) string, opts ResolveOptions) []domain.Stage {
	var stages []domain.Stage
	for _, code := range order {
		var activities []domain.Activity
		for _, ta := range candidates[code] {
			if !included(ta.Conditional, opts) {
				continue
			}
			activities = append(activities, domain.Activity{
				Activity:     ta.Outcome,
				Description:  ta.Questions,
				Owner:        SubstituteOwner(ta.Owner, opts.SolutionArchitect, opts.AccountExecutive),
				DurationDays: domain.DefaultActivityDays,
				Status:       domain.ActivityNotStarted,
			})
		}
		if len(activities) == 0 {
			continue
		}
		stages = append(stages, domain.Stage{Name: nameFor(code), Activities: activities})
	}
	return stages
}

// ResolveDefault materializes the built-in consolidated template.
func ResolveDefault(opts ResolveOptions) []domain.Stage {
	candidates := make(map[StageCode][]TemplateActivity, len(DefaultStageOrder))
	for _, code := range DefaultStageOrder {
		candidates[code] = Consolidated[code].Activities
	}
	return materialize(candidates, DefaultStageOrder, func(c StageCode) string {
		return StageName(Consolidated, c)
	}, opts)
}

// ResolveDatabase materializes a database-sourced template. On fetch failure
// or an empty result it falls back to the default template and returns a
// user-visible warning; this degradation is deliberate and is not an error.
func ResolveDatabase(ctx context.Context, fetcher Fetcher, opts ResolveOptions) (stages []domain.Stage, warning string) {
	if fetcher == nil {
		return ResolveDefault(opts), "database template unavailable, using default template"
	}
	candidates, err := fetcher.FetchTemplate(ctx)
	if err != nil || len(candidates) == 0 {
		return ResolveDefault(opts), "could not load database template, using default template"
	}
	// Database templates are capped at the four recognized stage codes.
	stages = materialize(candidates, DefaultStageOrder, func(c StageCode) string {
		return string(c)
	}, opts)
	return stages, ""
}

// ResolveClone rebuilds stages from an existing plan's stored activity rows.
// Rows are grouped by their raw stage label, labels ordered lexically, and
// every activity is reset to the default duration and "Not Started" status so
// the cloned plan starts schedule-fresh.
func ResolveClone(rows []CloneActivity, opts ResolveOptions) []domain.Stage {
	grouped := make(map[string][]domain.Activity)
	for _, row := range rows {
		grouped[row.Stage] = append(grouped[row.Stage], domain.Activity{
			Activity:     row.Outcome,
			Description:  row.Questions,
			Owner:        SubstituteOwner(row.Owner, opts.SolutionArchitect, opts.AccountExecutive),
			DurationDays: domain.DefaultActivityDays,
			Status:       domain.ActivityNotStarted,
		})
	}

	labels := make([]string, 0, len(grouped))
	for label := range grouped {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	stages := make([]domain.Stage, 0, len(labels))
	for _, label := range labels {
		stages = append(stages, domain.Stage{Name: label, Activities: grouped[label]})
	}
	return stages
}
