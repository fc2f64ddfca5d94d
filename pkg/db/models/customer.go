package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a storefront shopper account.
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email         string    `gorm:"type:text;not null;uniqueIndex"`
	DisplayName   *string   `gorm:"column:display_name"`
	EmailVerified bool      `gorm:"column:email_verified;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
