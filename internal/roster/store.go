// AngelaMos | 2026
// store.go

package roster

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shreeram-borwells/srb-backend/internal/core"
)

// DefaultPassword is assigned to accounts created through the roster UI.
const DefaultPassword = "admin"

type Store struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewStore() *Store {
	return &Store{users: make(map[string]*User)}
}

func (s *Store) Seed(users []User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range users {
		u := users[i]
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		s.users[u.ID] = &u
	}
}

// Lookup finds an account by email, case-insensitively. Used by login.
func (s *Store) Lookup(email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if strings.ToLower(u.Email) == needle {
			return *u, nil
		}
	}
	return User{}, core.ErrNotFound
}

func (s *Store) Get(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, core.ErrNotFound
	}
	return *u, nil
}

// List returns all accounts, Super Admins first, then by name.
func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Role != all[j].Role {
			return roleRank(all[i].Role) < roleRank(all[j].Role)
		}
		return all[i].Name < all[j].Name
	})
	return all
}

func roleRank(r Role) int {
	switch r {
	case RoleSuperAdmin:
		return 0
	case RoleAdmin:
		return 1
	default:
		return 2
	}
}

type CreateInput struct {
	Name     string
	Email    string
	Role     Role
	Password string
}

// Create adds an account. Role defaults to Admin, password to
// DefaultPassword. Super Admins cannot be minted through the roster.
func (s *Store) Create(in CreateInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return User{}, core.ErrInvalidInput
	}

	role := in.Role
	if role == "" {
		role = RoleAdmin
	}
	if role == RoleSuperAdmin || !role.Valid() {
		return User{}, core.ErrForbidden
	}

	password := in.Password
	if password == "" {
		password = DefaultPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(email)
	for _, u := range s.users {
		if strings.ToLower(u.Email) == needle {
			return User{}, core.ErrDuplicateKey
		}
	}

	u := &User{
		ID:       uuid.NewString(),
		Role:     role,
		Name:     name,
		Email:    email,
		Password: password,
	}
	s.users[u.ID] = u
	return *u, nil
}

type UpdateInput struct {
	Name     string
	Email    string
	Role     Role
	Password string
}

// Update edits an account in place. Super Admin records are immutable
// through the roster, and no account can be promoted to Super Admin.
func (s *Store) Update(id string, in UpdateInput) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, core.ErrNotFound
	}
	if u.Role == RoleSuperAdmin {
		return User{}, core.ErrForbidden
	}

	if in.Role != "" {
		if in.Role == RoleSuperAdmin || !in.Role.Valid() {
			return User{}, core.ErrForbidden
		}
		u.Role = in.Role
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		u.Name = name
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		needle := strings.ToLower(email)
		for otherID, other := range s.users {
			if otherID != id && strings.ToLower(other.Email) == needle {
				return User{}, core.ErrDuplicateKey
			}
		}
		u.Email = email
	}
	if in.Password != "" {
		u.Password = in.Password
	}

	return *u, nil
}

// Delete removes an account. Super Admin records cannot be deleted.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return core.ErrNotFound
	}
	if u.Role == RoleSuperAdmin {
		return core.ErrForbidden
	}

	delete(s.users, id)
	return nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
