package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/vogant/storefront-backend/pkg/db/models"
	"github.com/vogant/storefront-backend/pkg/enums"
)

// OrderItemResponse is one purchased line in an order payload.
type OrderItemResponse struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderResponse is the order shape returned to the admin surface.
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    *uuid.UUID          `json:"customer_id,omitempty"`
	Total         float64             `json:"total"`
	OrderStatus   enums.OrderStatus   `json:"order_status"`
	PaymentStatus enums.PaymentStatus `json:"payment_status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     *time.Time          `json:"created_at,omitempty"`
}

// ToOrderResponse maps a stored order onto the response shape.
func ToOrderResponse(order models.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		Total:         order.Total,
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}
