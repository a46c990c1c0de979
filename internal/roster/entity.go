// AngelaMos | 2026
// entity.go

// Package roster manages the account list behind the admin dashboard.
// Accounts live in memory and are seeded from fixtures at startup.
package roster

type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RoleNormal     Role = "Normal"
)

// CanViewFinancials reports whether the role sees the revenue/expense
// summary figures.
func (r Role) CanViewFinancials() bool {
	return r == RoleSuperAdmin
}

// CanManageUsers reports whether the role may edit the account roster.
func (r Role) CanManageUsers() bool {
	return r == RoleSuperAdmin
}

// CanAccessDashboard reports whether the role may enter the admin panel
// at all. Normal users authenticate but stay on the public site.
func (r Role) CanAccessDashboard() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleNormal:
		return true
	}
	return false
}

// User is a dashboard account. Passwords are stored and compared as
// plaintext: equality against the roster is the whole authentication
// model here.
type User struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
