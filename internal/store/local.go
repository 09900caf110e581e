// Package store implements the local durable store: two keyed JSON files,
// users.json and plans.json, under a data directory. The local store is the
// authoritative source for read-back and editing; its failures are never
// swallowed and always propagate to the caller.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
)

const (
	usersFile = "users.json"
	plansFile = "plans.json"
)

// Local is a file-backed keyed store rooted at a data directory.
type Local struct {
	dir string
}

// Open ensures the data directory exists and returns a store rooted there.
func Open(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Local) Dir() string {
	return s.dir
}

func (s *Local) readFile(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

func (s *Local) writeFile(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// LoadUsers returns all stored users keyed by ID. A missing file yields an
// empty map.
func (s *Local) LoadUsers() (map[string]domain.User, error) {
	users := make(map[string]domain.User)
	if err := s.readFile(usersFile, &users); err != nil {
		return nil, err
	}
	for id, u := range users {
		u.ID = id
		users[id] = u
	}
	return users, nil
}

// SaveUsers writes the full user collection.
func (s *Local) SaveUsers(users map[string]domain.User) error {
	return s.writeFile(usersFile, users)
}

// LoadPlans returns all stored plans keyed by plan identifier. A missing file
// yields an empty map.
func (s *Local) LoadPlans() (map[string]domain.Plan, error) {
	plans := make(map[string]domain.Plan)
	if err := s.readFile(plansFile, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// SavePlans writes the full plan collection.
func (s *Local) SavePlans(plans map[string]domain.Plan) error {
	return s.writeFile(plansFile, plans)
}

// PutPlan upserts a single plan by its identifier.
func (s *Local) PutPlan(p domain.Plan) error {
	plans, err := s.LoadPlans()
	if err != nil {
		return err
	}
	plans[p.ID] = p
	return s.SavePlans(plans)
}

// GetPlan returns a single plan by identifier.
func (s *Local) GetPlan(id string) (domain.Plan, error) {
	plans, err := s.LoadPlans()
	if err != nil {
		return domain.Plan{}, err
	}
	p, ok := plans[id]
	if !ok {
		return domain.Plan{}, fmt.Errorf("plan %q not found", id)
	}
	return p, nil
}

// DeletePlan removes a plan from the local store only; remote rows written
// for it are intentionally left in place.
func (s *Local) DeletePlan(id string) error {
	plans, err := s.LoadPlans()
	if err != nil {
		return err
	}
	if _, ok := plans[id]; !ok {
		return fmt.Errorf("plan %q not found", id)
	}
	delete(plans, id)
	return s.SavePlans(plans)
}
