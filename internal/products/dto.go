package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/vogant/storefront-backend/pkg/db/models"
)

// CreateProductInput carries a new catalog listing.
type CreateProductInput struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Stock    int     `json:"stock" validate:"gte=0"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdateProductInput carries a partial edit; nil fields are left alone.
type UpdateProductInput struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	Stock    *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

// ProductResponse is the catalog listing shape returned to admins.
type ProductResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProductResponse maps a stored product onto the response shape.
func ToProductResponse(product models.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		Stock:     product.Stock,
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}
