package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/remote"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
)

// FakeRemote is an in-memory RemoteStore. Zero value behaves like a healthy,
// configured, empty remote; set Fail to make every operation error, or
// Unconfigured to make every operation short-circuit.
type FakeRemote struct {
	Unconfigured bool
	Fail         bool

	SavedRows  []remote.ActivityRow
	SaveCalls  int
	Index      []remote.IndexEntry
	MapDetails map[string][]template.CloneActivity
	Template   map[template.StageCode][]template.TemplateActivity
	PlanCount  int
}

var errFakeRemote = errors.New("fake remote failure")

func (f *FakeRemote) gate() error {
	if f.Unconfigured {
		return remote.ErrNotConfigured
	}
	if f.Fail {
		return errFakeRemote
	}
	return nil
}

func (f *FakeRemote) Configured() bool {
	return !f.Unconfigured
}

func (f *FakeRemote) SaveActivityRows(ctx context.Context, rows []remote.ActivityRow) error {
	f.SaveCalls++
	if err := f.gate(); err != nil {
		return err
	}
	f.SavedRows = append(f.SavedRows, rows...)
	return nil
}

func (f *FakeRemote) LoadIndex(ctx context.Context) ([]remote.IndexEntry, error) {
	if err := f.gate(); err != nil {
		return nil, err
	}
	return f.Index, nil
}

func (f *FakeRemote) LoadMapDetails(ctx context.Context, mapID string) ([]template.CloneActivity, error) {
	if err := f.gate(); err != nil {
		return nil, err
	}
	return f.MapDetails[mapID], nil
}

func (f *FakeRemote) FetchTemplate(ctx context.Context) (map[template.StageCode][]template.TemplateActivity, error) {
	if err := f.gate(); err != nil {
		return nil, err
	}
	return f.Template, nil
}

func (f *FakeRemote) CountPlansInMonth(ctx context.Context, customer string, year int, month time.Month) (int, error) {
	if err := f.gate(); err != nil {
		return 0, err
	}
	return f.PlanCount, nil
}

// FailingStore wraps a LocalStore and fails every write, for testing the
// local-fatal error path.
type FailingStore struct {
	Users map[string]domain.User
	Plans map[string]domain.Plan
	Err   error
}

func (s *FailingStore) fail() error {
	if s.Err != nil {
		return s.Err
	}
	return errors.New("disk full")
}

func (s *FailingStore) LoadUsers() (map[string]domain.User, error) {
	if s.Users == nil {
		return map[string]domain.User{}, nil
	}
	return s.Users, nil
}

func (s *FailingStore) SaveUsers(map[string]domain.User) error { return s.fail() }

func (s *FailingStore) LoadPlans() (map[string]domain.Plan, error) {
	if s.Plans == nil {
		return map[string]domain.Plan{}, nil
	}
	return s.Plans, nil
}

func (s *FailingStore) SavePlans(map[string]domain.Plan) error { return s.fail() }

func (s *FailingStore) PutPlan(domain.Plan) error { return s.fail() }

func (s *FailingStore) GetPlan(id string) (domain.Plan, error) {
	if p, ok := s.Plans[id]; ok {
		return p, nil
	}
	return domain.Plan{}, errors.New("plan not found")
}

func (s *FailingStore) DeletePlan(string) error { return s.fail() }
