package service

import (
	"testing"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
	"github.com/manjulsinghal1410/use-case-maps/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAdd(t *testing.T) {
	svc := NewUserService(testutil.NewTestStore(t))

	u := testutil.NewTestUser("Ana Flores")
	require.NoError(t, svc.Add(u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana Flores", users[0].Name)
}

func TestUserAdd_DefaultsRole(t *testing.T) {
	svc := NewUserService(testutil.NewTestStore(t))

	u := testutil.NewTestUser("Ana Flores")
	u.Role = ""
	require.NoError(t, svc.Add(u))
	assert.Equal(t, domain.RoleSolutionArchitect, u.Role)
}

func TestUserAdd_RejectsUnknownRole(t *testing.T) {
	svc := NewUserService(testutil.NewTestStore(t))

	u := testutil.NewTestUser("Ana Flores")
	u.Role = "Wizard"
	assert.Error(t, svc.Add(u))
}

func TestUserAdd_RejectsMissingFields(t *testing.T) {
	svc := NewUserService(testutil.NewTestStore(t))

	u := testutil.NewTestUser("")
	assert.Error(t, svc.Add(u))

	u = testutil.NewTestUser("Ana Flores")
	u.Email = ""
	assert.Error(t, svc.Add(u))
}

func TestUserAdd_DuplicateNameCaseInsensitive(t *testing.T) {
	svc := NewUserService(testutil.NewTestStore(t))

	require.NoError(t, svc.Add(testutil.NewTestUser("Ana Flores")))
	err := svc.Add(testutil.NewTestUser("ana flores"))
	assert.ErrorContains(t, err, "already exists")
}

func TestUserFindByName(t *testing.T) {
	svc := NewUserService(testutil.NewTestStore(t))

	added := testutil.NewTestUser("Ana Flores")
	require.NoError(t, svc.Add(added))

	found, err := svc.FindByName("ANA FLORES")
	require.NoError(t, err)
	assert.Equal(t, added.ID, found.ID)

	_, err = svc.FindByName("Nobody")
	assert.Error(t, err)
}
