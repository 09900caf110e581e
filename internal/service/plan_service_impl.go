package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/remote"
	"github.com/manjulsinghal1410/use-case-maps/internal/schedule"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
)

type planService struct {
	local  LocalStore
	remote RemoteStore
	ids    *IdentifierGenerator
	now    func() time.Time
}

// NewPlanService wires the plan use cases. remoteStore may be nil when no
// remote configuration exists at all; everything degrades to local-only.
func NewPlanService(local LocalStore, remoteStore RemoteStore, ids *IdentifierGenerator) PlanService {
	return &planService{
		local:  local,
		remote: remoteStore,
		ids:    ids,
		now:    time.Now,
	}
}

// Create validates the form fields, materializes the selected template
// source, and assigns an identifier. The result is not persisted; callers
// follow up with Save once the user confirms.
func (s *planService) Create(ctx context.Context, req CreatePlanRequest) (*CreateResult, error) {
	plan := domain.Plan{
		UserID:            req.UserID,
		Name:              req.Name,
		Customer:          req.Customer,
		SolutionArchitect: req.SolutionArchitect,
		AccountExecutive:  req.AccountExecutive,
		StartDate:         req.StartDate,
		DurationMonths:    req.DurationMonths,
		SSARequired:       req.SSARequired,
		POCHappening:      req.POCHappening,
		Status:            domain.PlanPlanning,
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if plan.DurationMonths <= 0 {
		plan.DurationMonths = 6
	}

	opts := template.ResolveOptions{
		SSARequired:       req.SSARequired,
		POCHappening:      req.POCHappening,
		SolutionArchitect: req.SolutionArchitect,
		AccountExecutive:  req.AccountExecutive,
	}

	var warnings []string
	switch req.Source {
	case template.SourceDatabase:
		var fetcher template.Fetcher
		if s.remote != nil && s.remote.Configured() {
			fetcher = s.remote
		}
		stages, warning := template.ResolveDatabase(ctx, fetcher, opts)
		plan.Stages = stages
		if warning != "" {
			warnings = append(warnings, warning)
		}
	case template.SourceClone:
		stages, err := s.resolveCloneSource(ctx, req, opts)
		if err != nil {
			return nil, err
		}
		plan.Stages = stages
	default:
		plan.Stages = template.ResolveDefault(opts)
	}

	now := s.now()
	plan.ID = s.ids.Generate(ctx, plan.Customer)
	plan.CreatedAt = now
	plan.UpdatedAt = now
	return &CreateResult{Plan: plan, Warnings: warnings}, nil
}

// resolveCloneSource picks the clone origin: a locally stored plan's
// activities, or a legacy remote map's rows.
func (s *planService) resolveCloneSource(ctx context.Context, req CreatePlanRequest, opts template.ResolveOptions) ([]domain.Stage, error) {
	if req.ClonePlanID != "" {
		source, err := s.local.GetPlan(req.ClonePlanID)
		if err != nil {
			return nil, fmt.Errorf("loading plan to clone: %w", err)
		}
		var rows []template.CloneActivity
		for _, stage := range source.Stages {
			for _, act := range stage.Activities {
				rows = append(rows, template.CloneActivity{
					Stage:     stage.Name,
					Outcome:   act.Activity,
					Questions: act.Description,
					Owner:     act.Owner,
				})
			}
		}
		return template.ResolveClone(rows, opts), nil
	}

	if req.CloneMapID == "" {
		return nil, fmt.Errorf("clone source not specified")
	}
	if s.remote == nil {
		return nil, remote.ErrNotConfigured
	}
	rows, err := s.remote.LoadMapDetails(ctx, req.CloneMapID)
	if err != nil {
		return nil, fmt.Errorf("loading map %q to clone: %w", req.CloneMapID, err)
	}
	return template.ResolveClone(rows, opts), nil
}

// Save performs the dual write. Local first: a local failure aborts the save
// and the remote is never attempted. The remote write is then attempted once;
// its failure is captured in the outcome, never returned as an error.
func (s *planService) Save(ctx context.Context, plan domain.Plan, actor string) (SaveOutcome, error) {
	plan.UpdatedAt = s.now()

	if err := s.local.PutPlan(plan); err != nil {
		return SaveOutcome{Local: WriteErr, Remote: WriteSkipped}, fmt.Errorf("saving plan locally: %w", err)
	}

	outcome := SaveOutcome{Local: WriteOK}
	if s.remote == nil || !s.remote.Configured() {
		outcome.Remote = WriteSkipped
		return outcome, nil
	}

	rows := expandActivityRows(plan, actor, s.now())
	outcome.RowCount = len(rows)
	if err := s.remote.SaveActivityRows(ctx, rows); err != nil {
		if errors.Is(err, remote.ErrNotConfigured) {
			outcome.Remote = WriteSkipped
			return outcome, nil
		}
		outcome.Remote = WriteErr
		outcome.RemoteErr = err
		return outcome, nil
	}
	outcome.Remote = WriteOK
	return outcome, nil
}

// expandActivityRows flattens a plan into one denormalized remote row per
// activity, with dates from a fresh schedule derivation and the coarse
// two-point progress scale.
func expandActivityRows(plan domain.Plan, actor string, at time.Time) []remote.ActivityRow {
	derived := schedule.Derive(plan.StartDate, plan.Stages)
	rows := make([]remote.ActivityRow, 0, len(derived))
	for _, d := range derived {
		progress := 50.0
		if d.Status == domain.ActivityNotStarted {
			progress = 0.0
		}
		rows = append(rows, remote.ActivityRow{
			PlanID:            plan.ID,
			PlanName:          plan.Name,
			Customer:          plan.Customer,
			Stage:             string(d.StageCode),
			Outcome:           d.Activity,
			Questions:         d.Description,
			Owner:             d.Owner,
			StartDate:         d.Start,
			EndDate:           d.End,
			Progress:          progress,
			Action:            d.Activity,
			SolutionArchitect: plan.SolutionArchitect,
			AccountExecutive:  plan.AccountExecutive,
			SSARequired:       plan.SSARequired,
			POCRequired:       plan.POCHappening,
			CreatedBy:         actor,
			CreatedAt:         at,
			UpdatedBy:         actor,
			UpdatedAt:         at,
		})
	}
	return rows
}

func (s *planService) Get(id string) (domain.Plan, error) {
	return s.local.GetPlan(id)
}

func (s *planService) ListAll() (map[string]domain.Plan, error) {
	return s.local.LoadPlans()
}

// ListByUser returns the user's plans ordered by creation time.
func (s *planService) ListByUser(userID string) ([]domain.Plan, error) {
	all, err := s.local.LoadPlans()
	if err != nil {
		return nil, err
	}
	var plans []domain.Plan
	for _, p := range all {
		if p.UserID == userID {
			plans = append(plans, p)
		}
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})
	return plans, nil
}

// Delete removes the plan from the local store only. Remote rows written for
// it are left in place; there is no cascading remote delete.
func (s *planService) Delete(id string) error {
	return s.local.DeletePlan(id)
}

// RemoteIndex returns the lightweight remote listing, or nothing when the
// remote is unconfigured or unreachable.
func (s *planService) RemoteIndex(ctx context.Context) ([]remote.IndexEntry, error) {
	if s.remote == nil || !s.remote.Configured() {
		return nil, remote.ErrNotConfigured
	}
	return s.remote.LoadIndex(ctx)
}
