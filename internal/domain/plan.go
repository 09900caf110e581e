package domain

import "time"

// DefaultActivityDays is the duration attached to template-materialized
// activities and assumed for any activity with a missing or non-positive
// duration at schedule time.
const DefaultActivityDays = 5

// Plan is the top-level entity: a customer implementation plan composed of
// ordered stages of activities. A plan is owned by the user that created it
// and persisted as a value keyed by its identifier.
type Plan struct {
	ID                string     `json:"use_case_id"`
	UserID            string     `json:"user_id"`
	Name              string     `json:"name"`
	Customer          string     `json:"customer"`
	SolutionArchitect string     `json:"solution_architect"`
	AccountExecutive  string     `json:"account_executive"`
	StartDate         time.Time  `json:"start_date"`
	DurationMonths    int        `json:"duration_months"`
	SSARequired       bool       `json:"ssa_required"`
	POCHappening      bool       `json:"poc_happening"`
	Status            PlanStatus `json:"status"`
	Stages            []Stage    `json:"stages"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Stage is a named, ordered group of activities. The name is free text and
// may embed a stage code such as "U2 - Uncover"; stage order drives schedule
// derivation.
type Stage struct {
	Name       string     `json:"stage_name"`
	Activities []Activity `json:"activities"`
}

// Activity is a single plan row. Start and end dates are never stored here;
// they are derived from plan start date and duration on every read.
type Activity struct {
	Activity     string         `json:"activity"`
	Description  string         `json:"description"`
	Owner        string         `json:"owner"`
	DurationDays int            `json:"duration_days"`
	Status       ActivityStatus `json:"status"`
}

// EffectiveDuration returns the activity duration in days, substituting the
// default for missing or non-positive values.
func (a Activity) EffectiveDuration() int {
	if a.DurationDays <= 0 {
		return DefaultActivityDays
	}
	return a.DurationDays
}

// ActivityCount returns the total number of activities across all stages.
func (p *Plan) ActivityCount() int {
	n := 0
	for _, s := range p.Stages {
		n += len(s.Activities)
	}
	return n
}

// Validate checks the required creation-form fields. Validation failures are
// blocking errors raised before any persistence attempt.
func (p *Plan) Validate() error {
	switch {
	case p.Name == "":
		return ErrMissingField("name")
	case p.Customer == "":
		return ErrMissingField("customer")
	case p.SolutionArchitect == "":
		return ErrMissingField("solution architect")
	case p.AccountExecutive == "":
		return ErrMissingField("account executive")
	}
	return nil
}
