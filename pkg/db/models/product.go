package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog listing. Stock may go negative in legacy
// data; the stock monitor treats that as critically low rather than
// rejecting the record.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Price     float64   `gorm:"column:price;not null;default:0"`
	Category  string    `gorm:"column:category;not null;default:''"`
	Stock     int       `gorm:"column:stock;not null;default:0"`
	ImageURL  *string   `gorm:"column:image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
