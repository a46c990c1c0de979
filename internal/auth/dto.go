// AngelaMos | 2026
// dto.go

package auth

import "github.com/shreeram-borwells/srb-backend/internal/roster"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string              `json:"token"`
	User  roster.UserResponse `json:"user"`
}

type MeResponse struct {
	User         roster.UserResponse `json:"user"`
	Capabilities Capabilities        `json:"capabilities"`
}

// Capabilities mirrors the role checks so the client never hardcodes
// role strings.
type Capabilities struct {
	ViewFinancials  bool `json:"viewFinancials"`
	ManageUsers     bool `json:"manageUsers"`
	AccessDashboard bool `json:"accessDashboard"`
}

func CapabilitiesFor(role roster.Role) Capabilities {
	return Capabilities{
		ViewFinancials:  role.CanViewFinancials(),
		ManageUsers:     role.CanManageUsers(),
		AccessDashboard: role.CanAccessDashboard(),
	}
}
