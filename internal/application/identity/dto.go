package identity

import (
	"time"

	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// LoginRequest is the payload for the login endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IP       string `json:"-"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	User   UserInfo        `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// RefreshTokenRequest is the payload for the token refresh endpoint
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse is returned on a successful token refresh
type RefreshTokenResponse struct {
	Tokens *auth.TokenPair `json:"tokens"`
}

// LogoutRequest carries the claims of the token being revoked.
// It is populated from the validated access token, not from the body.
type LogoutRequest struct {
	Claims *auth.Claims `json:"-"`
}

// ChangePasswordRequest is the payload for the change-password endpoint
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	Username    string     `json:"username" binding:"required,min=3,max=100"`
	Password    string     `json:"password" binding:"required,min=8"`
	Email       string     `json:"email" binding:"omitempty,email"`
	DisplayName string     `json:"display_name" binding:"omitempty,max=200"`
	Role        string     `json:"role" binding:"required,oneof=admin manager viewer"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateUserRequest is the payload for updating a user's profile fields
type UpdateUserRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	DisplayName *string `json:"display_name" binding:"omitempty,max=200"`
}

// ChangeRoleRequest is the payload for changing a user's role
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin manager viewer"`
}

// ResetPasswordRequest is the payload for an admin password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UserListFilter carries query parameters for listing users
type UserListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=admin manager viewer"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive locked"`
}

// UserInfo is the projection of a user returned to clients
type UserInfo struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToUserInfo converts a domain user to its response projection
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
