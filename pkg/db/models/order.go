package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vogant/storefront-backend/pkg/enums"
)

// Order represents a placed storefront order. Total is the stored charge
// amount; it is trusted as-is for revenue even when it diverges from the
// sum of line subtotals.
type Order struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID    *uuid.UUID          `gorm:"column:customer_id;type:uuid;index"`
	Total         float64             `gorm:"column:total;not null;default:0"`
	OrderStatus   enums.OrderStatus   `gorm:"column:order_status;not null;default:'Pending'"`
	PaymentStatus enums.PaymentStatus `gorm:"column:payment_status;not null;default:'Pending'"`
	PaymentMethod string              `gorm:"column:payment_method;not null;default:''"`
	Items         []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     *time.Time          `gorm:"column:created_at"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem is one purchased line within an order.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID  uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	Name     string    `gorm:"column:name;not null"`
	Category string    `gorm:"column:category;not null;default:''"`
	Price    float64   `gorm:"column:price;not null;default:0"`
	Quantity int       `gorm:"column:quantity;not null;default:1"`
	Position int       `gorm:"column:position;not null;default:0"`
}
