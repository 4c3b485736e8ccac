package response

import (
	"time"

	"storefront/internal/data/entity"
)

type RegisterResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// Helper converters
func RegisterToResponse(user *entity.User) *RegisterResponse {
	return &RegisterResponse{
		Username: user.Username,
		Email:    user.Email,
	}
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}
