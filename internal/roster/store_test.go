// AngelaMos | 2026
// store_test.go

package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreeram-borwells/srb-backend/internal/core"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.Seed([]User{
		{ID: "sa-1", Role: RoleSuperAdmin, Name: "Venkat Rao",
			Email: "venkat@shreerambore.com", Password: "sa"},
		{ID: "ad-1", Role: RoleAdmin, Name: "Ramesh Kumar",
			Email: "ramesh@shreerambore.com", Password: "admin"},
		{ID: "nu-1", Role: RoleNormal, Name: "Guest User",
			Email: "guest@shreerambore.com", Password: "user"},
	})
	return s
}

func TestLookup(t *testing.T) {
	s := testStore(t)

	u, err := s.Lookup("RAMESH@shreerambore.com")
	require.NoError(t, err)
	assert.Equal(t, "ad-1", u.ID)

	_, err = s.Lookup("nobody@shreerambore.com")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestCreate(t *testing.T) {
	t.Run("defaults role and password", func(t *testing.T) {
		s := testStore(t)
		u, err := s.Create(CreateInput{
			Name:  "New Auditor",
			Email: "auditor@shreerambore.com",
		})
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
		assert.Equal(t, DefaultPassword, u.Password)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("rejects super admin role", func(t *testing.T) {
		s := testStore(t)
		_, err := s.Create(CreateInput{
			Name:  "Sneaky",
			Email: "sneaky@shreerambore.com",
			Role:  RoleSuperAdmin,
		})
		assert.True(t, errors.Is(err, core.ErrForbidden))
	})

	t.Run("rejects duplicate email case-insensitively", func(t *testing.T) {
		s := testStore(t)
		_, err := s.Create(CreateInput{
			Name:  "Dup",
			Email: "RAMESH@shreerambore.com",
		})
		assert.True(t, errors.Is(err, core.ErrDuplicateKey))
	})
}

func TestUpdate(t *testing.T) {
	t.Run("edits admin fields", func(t *testing.T) {
		s := testStore(t)
		u, err := s.Update("ad-1", UpdateInput{Name: "Ramesh K", Role: RoleNormal})
		require.NoError(t, err)
		assert.Equal(t, "Ramesh K", u.Name)
		assert.Equal(t, RoleNormal, u.Role)
	})

	t.Run("super admin records are immutable", func(t *testing.T) {
		s := testStore(t)
		_, err := s.Update("sa-1", UpdateInput{Name: "Renamed"})
		assert.True(t, errors.Is(err, core.ErrForbidden))
	})

	t.Run("cannot promote to super admin", func(t *testing.T) {
		s := testStore(t)
		_, err := s.Update("ad-1", UpdateInput{Role: RoleSuperAdmin})
		assert.True(t, errors.Is(err, core.ErrForbidden))
	})
}

func TestDelete(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Delete("ad-1"))
	assert.True(t, errors.Is(s.Delete("ad-1"), core.ErrNotFound))
	assert.True(t, errors.Is(s.Delete("sa-1"), core.ErrForbidden))
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleSuperAdmin.CanViewFinancials())
	assert.True(t, RoleSuperAdmin.CanManageUsers())
	assert.True(t, RoleSuperAdmin.CanAccessDashboard())

	assert.False(t, RoleAdmin.CanViewFinancials())
	assert.False(t, RoleAdmin.CanManageUsers())
	assert.True(t, RoleAdmin.CanAccessDashboard())

	assert.False(t, RoleNormal.CanAccessDashboard())
}
