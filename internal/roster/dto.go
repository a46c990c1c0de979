// AngelaMos | 2026
// dto.go

package roster

type CreateUserRequest struct {
	Name     string `json:"name"  validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role"  validate:"omitempty,oneof=Admin Normal"`
	Password string `json:"password" validate:"omitempty,min=1,max=128"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"  validate:"omitempty,min=1,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     Role   `json:"role"  validate:"omitempty,oneof=Admin Normal"`
	Password string `json:"password" validate:"omitempty,min=1,max=128"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Role:  u.Role,
		Name:  u.Name,
		Email: u.Email,
	}
}

func ToUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
