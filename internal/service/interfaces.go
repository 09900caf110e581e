package service

import (
	"context"
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/remote"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
)

// LocalStore is the authoritative keyed store. Failures from it are fatal to
// the operation that hit them.
type LocalStore interface {
	LoadUsers() (map[string]domain.User, error)
	SaveUsers(users map[string]domain.User) error
	LoadPlans() (map[string]domain.Plan, error)
	SavePlans(plans map[string]domain.Plan) error
	PutPlan(p domain.Plan) error
	GetPlan(id string) (domain.Plan, error)
	DeletePlan(id string) error
}

// RemoteStore is the best-effort remote backend. Any error from it degrades
// to a warning; ErrNotConfigured maps to a skipped outcome.
type RemoteStore interface {
	Configured() bool
	SaveActivityRows(ctx context.Context, rows []remote.ActivityRow) error
	LoadIndex(ctx context.Context) ([]remote.IndexEntry, error)
	LoadMapDetails(ctx context.Context, mapID string) ([]template.CloneActivity, error)
	FetchTemplate(ctx context.Context) (map[template.StageCode][]template.TemplateActivity, error)
	CountPlansInMonth(ctx context.Context, customer string, year int, month time.Month) (int, error)
}

// CreatePlanRequest carries the creation-form fields plus the template
// source selection.
type CreatePlanRequest struct {
	UserID            string
	Name              string
	Customer          string
	SolutionArchitect string
	AccountExecutive  string
	StartDate         time.Time
	DurationMonths    int
	SSARequired       bool
	POCHappening      bool
	Source            template.Source
	CloneMapID        string
	ClonePlanID       string
}

// CreateResult is a materialized, not-yet-saved plan plus any degradation
// warnings raised while resolving its template.
type CreateResult struct {
	Plan     domain.Plan
	Warnings []string
}

type PlanService interface {
	Create(ctx context.Context, req CreatePlanRequest) (*CreateResult, error)
	Save(ctx context.Context, plan domain.Plan, actor string) (SaveOutcome, error)
	Get(id string) (domain.Plan, error)
	ListByUser(userID string) ([]domain.Plan, error)
	ListAll() (map[string]domain.Plan, error)
	Delete(id string) error
	RemoteIndex(ctx context.Context) ([]remote.IndexEntry, error)
}

type UserService interface {
	Add(u *domain.User) error
	List() ([]domain.User, error)
	FindByName(name string) (*domain.User, error)
}
