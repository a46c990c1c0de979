// AngelaMos | 2026
// service.go

// Package auth implements the login gate and session lifecycle. The
// credential check is plaintext equality against the roster, which is the
// product's stated trust model, not an oversight. Sessions are JWTs whose
// revocation set lives in memory, so every session dies with the process.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shreeram-borwells/srb-backend/internal/core"
	"github.com/shreeram-borwells/srb-backend/internal/metrics"
	"github.com/shreeram-borwells/srb-backend/internal/middleware"
	"github.com/shreeram-borwells/srb-backend/internal/roster"
)

// Login failures are distinguishable on purpose: the dashboard shows the
// operator which field was wrong.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

type Service struct {
	roster  *roster.Store
	jwt     *JWTManager
	logger  *slog.Logger
	mu      sync.Mutex
	revoked map[string]struct{}
}

func NewService(
	rosterStore *roster.Store,
	jwtManager *JWTManager,
	logger *slog.Logger,
) *Service {
	return &Service{
		roster:  rosterStore,
		jwt:     jwtManager,
		logger:  logger,
		revoked: make(map[string]struct{}),
	}
}

// LoginResult carries the issued token plus the account it belongs to.
type LoginResult struct {
	Token string
	User  roster.User
}

// Login authenticates an email/password pair. Attempts are unlimited and
// not throttled here; the route-level rate limiter is the only brake.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*LoginResult, error) {
	user, err := s.roster.Lookup(email)
	if err != nil {
		metrics.Logins.WithLabelValues("user_not_found").Inc()
		return nil, ErrUserNotFound
	}

	if user.Password != password {
		metrics.Logins.WithLabelValues("incorrect_password").Inc()
		return nil, ErrIncorrectPassword
	}

	token, err := s.jwt.CreateSessionToken(
		user.ID,
		string(user.Role),
		user.Name,
	)
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.Logins.WithLabelValues("success").Inc()
	s.logger.Info("login",
		"user_id", user.ID,
		"role", user.Role,
	)

	return &LoginResult{Token: token, User: user}, nil
}

// Logout revokes the session's jti. Idempotent.
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwt.ParseSessionToken(ctx, tokenString)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.revoked[claims.TokenID] = struct{}{}
	s.mu.Unlock()

	s.logger.Info("logout", "user_id", claims.UserID)
	return nil
}

// VerifySessionToken implements middleware.TokenVerifier: signature and
// claim checks via the manager, then the revocation set.
func (s *Service) VerifySessionToken(
	ctx context.Context,
	tokenString string,
) (*middleware.SessionClaims, error) {
	claims, err := s.jwt.ParseSessionToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.TokenID]
	s.mu.Unlock()

	if revoked {
		return nil, core.ErrTokenRevoked
	}

	return &middleware.SessionClaims{
		UserID: claims.UserID,
		Role:   claims.Role,
		Name:   claims.Name,
	}, nil
}

// RevokedCount reports the size of the revocation set for stats.
func (s *Service) RevokedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.revoked)
}
