// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreeram-borwells/srb-backend/internal/config"
	"github.com/shreeram-borwells/srb-backend/internal/roster"
)

func testService(t *testing.T) *Service {
	t.Helper()

	dir := t.TempDir()
	privPath := filepath.Join(dir, "jwt.pem")
	pubPath := filepath.Join(dir, "jwt.pub.pem")
	require.NoError(t, GenerateKeyPair(privPath, pubPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     privPath,
		PublicKeyPath:      pubPath,
		SessionTokenExpire: time.Hour,
		Issuer:             "srb-backend",
		Audience:           "srb-dashboard",
	})
	require.NoError(t, err)

	store := roster.NewStore()
	store.Seed([]roster.User{
		{ID: "sa-1", Role: roster.RoleSuperAdmin, Name: "Venkat Rao",
			Email: "venkat@shreerambore.com", Password: "sa"},
		{ID: "nu-1", Role: roster.RoleNormal, Name: "Guest User",
			Email: "guest@shreerambore.com", Password: "user"},
	})

	return NewService(store, manager, slog.Default())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues verifiable token", func(t *testing.T) {
		s := testService(t)
		result, err := s.Login(ctx, "venkat@shreerambore.com", "sa")
		require.NoError(t, err)
		require.NotEmpty(t, result.Token)

		claims, err := s.VerifySessionToken(ctx, result.Token)
		require.NoError(t, err)
		assert.Equal(t, "sa-1", claims.UserID)
		assert.Equal(t, "Super Admin", claims.Role)
		assert.Equal(t, "Venkat Rao", claims.Name)
	})

	t.Run("unknown email", func(t *testing.T) {
		s := testService(t)
		_, err := s.Login(ctx, "nobody@shreerambore.com", "sa")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		s := testService(t)
		_, err := s.Login(ctx, "venkat@shreerambore.com", "wrong")
		assert.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("email is case-insensitive, password is not", func(t *testing.T) {
		s := testService(t)
		_, err := s.Login(ctx, "VENKAT@shreerambore.com", "sa")
		require.NoError(t, err)

		_, err = s.Login(ctx, "venkat@shreerambore.com", "SA")
		assert.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("normal role logs in but lacks dashboard capability", func(t *testing.T) {
		s := testService(t)
		result, err := s.Login(ctx, "guest@shreerambore.com", "user")
		require.NoError(t, err)

		caps := CapabilitiesFor(result.User.Role)
		assert.False(t, caps.AccessDashboard)
		assert.False(t, caps.ViewFinancials)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	s := testService(t)

	result, err := s.Login(ctx, "venkat@shreerambore.com", "sa")
	require.NoError(t, err)

	_, err = s.VerifySessionToken(ctx, result.Token)
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, result.Token))

	_, err = s.VerifySessionToken(ctx, result.Token)
	assert.Error(t, err)

	// Idempotent.
	require.NoError(t, s.Logout(ctx, result.Token))
	assert.Equal(t, 1, s.RevokedCount())
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s := testService(t)
	_, err := s.VerifySessionToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
