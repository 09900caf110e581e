package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
)

type userService struct {
	local LocalStore
	now   func() time.Time
}

// NewUserService wires the user use cases onto the local store.
func NewUserService(local LocalStore) UserService {
	return &userService{local: local, now: time.Now}
}

func (s *userService) Add(u *domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.Role == "" {
		u.Role = domain.RoleSolutionArchitect
	} else if !domain.ValidUserRoles[string(u.Role)] {
		return fmt.Errorf("unknown role %q", u.Role)
	}

	users, err := s.local.LoadUsers()
	if err != nil {
		return err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Name, u.Name) {
			return fmt.Errorf("user %q already exists", u.Name)
		}
	}

	u.ID = uuid.New().String()
	u.CreatedAt = s.now()
	users[u.ID] = *u
	return s.local.SaveUsers(users)
}

// List returns all users ordered by creation time.
func (s *userService) List() ([]domain.User, error) {
	byID, err := s.local.LoadUsers()
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(byID))
	for _, u := range byID {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// FindByName resolves a user by case-insensitive name match.
func (s *userService) FindByName(name string) (*domain.User, error) {
	users, err := s.local.LoadUsers()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %q not found", name)
}
