package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/vogant/storefront-backend/pkg/db/models"
)

// LoginRequest captures the admin credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminDTO is the admin account shape returned after login.
type AdminDTO struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LoginResponse contains the token and admin produced by a successful login.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Admin       *AdminDTO `json:"admin"`
}

// FromModel maps a stored admin onto the response shape.
func FromModel(admin *models.Admin) *AdminDTO {
	if admin == nil {
		return nil
	}
	return &AdminDTO{
		ID:          admin.ID,
		Email:       admin.Email,
		LastLoginAt: admin.LastLoginAt,
		CreatedAt:   admin.CreatedAt,
	}
}
