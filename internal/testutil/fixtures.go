package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/store"
)

// NewTestStore creates a local store rooted in a per-test temp directory.
func NewTestStore(t *testing.T) *store.Local {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s
}

// Plan options
type PlanOption func(*domain.Plan)

func WithStartDate(d time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.StartDate = d
	}
}

func WithPlanStatus(s domain.PlanStatus) PlanOption {
	return func(p *domain.Plan) {
		p.Status = s
	}
}

func WithStages(stages ...domain.Stage) PlanOption {
	return func(p *domain.Plan) {
		p.Stages = stages
	}
}

func WithPlanID(id string) PlanOption {
	return func(p *domain.Plan) {
		p.ID = id
	}
}

// NewTestPlan builds a minimally valid plan for the given customer.
func NewTestPlan(customer string, opts ...PlanOption) domain.Plan {
	now := time.Now().UTC()
	p := domain.Plan{
		ID:                domain.FormatPlanID(customer, now, 1),
		UserID:            uuid.New().String(),
		Name:              customer + " Implementation",
		Customer:          customer,
		SolutionArchitect: "Ana Flores",
		AccountExecutive:  "Ben Ochieng",
		StartDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths:    6,
		Status:            domain.PlanPlanning,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestStage builds a stage with n default activities.
func NewTestStage(name string, n int) domain.Stage {
	stage := domain.Stage{Name: name}
	for i := 0; i < n; i++ {
		stage.Activities = append(stage.Activities, domain.Activity{
			Activity:     "Task",
			Description:  "What needs to happen?",
			DurationDays: domain.DefaultActivityDays,
			Status:       domain.ActivityNotStarted,
		})
	}
	return stage
}

// NewTestUser builds a valid user.
func NewTestUser(name string) *domain.User {
	return &domain.User{
		Name:  name,
		Email: "test@example.com",
		Role:  domain.RoleSolutionArchitect,
	}
}
