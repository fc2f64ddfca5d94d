package analytics

import (
	"math"
	"time"

	"github.com/vogant/storefront-backend/pkg/db/models"
	"github.com/vogant/storefront-backend/pkg/enums"
)

// OrderRecord is the engine's view of one placed order. Records are
// immutable inputs; the aggregator never writes back to them.
type OrderRecord struct {
	ID            string
	Items         []OrderItemRecord
	Total         float64
	OrderStatus   enums.OrderStatus
	PaymentStatus enums.PaymentStatus
	PaymentMethod string
	CustomerID    string
	CreatedAt     *time.Time
}

// OrderItemRecord is one purchased line inside an OrderRecord.
type OrderItemRecord struct {
	Name     string
	Category string
	Price    float64
	Quantity int
}

// CustomerRecord is the engine's view of a shopper account.
type CustomerRecord struct {
	ID            string
	Email         string
	EmailVerified bool
	CreatedAt     time.Time
}

// ProductRecord is the engine's view of a catalog listing. Stock may be
// negative in legacy data and must not crash the stock monitor.
type ProductRecord struct {
	ID       string
	Name     string
	Category string
	Stock    int
}

// EffectiveDate returns the order's createdAt, or now when the record
// carries no timestamp. Substituting the current time is a documented
// approximation for legacy rows, not an error.
func (o OrderRecord) EffectiveDate(now time.Time) time.Time {
	if o.CreatedAt == nil || o.CreatedAt.IsZero() {
		return now
	}
	return *o.CreatedAt
}

// OrderRecordFromModel converts a stored order into an engine record,
// degrading malformed numeric fields to zero.
func OrderRecordFromModel(order models.Order) OrderRecord {
	rec := OrderRecord{
		ID:            order.ID.String(),
		Total:         sanitizeAmount(order.Total),
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
	}
	if !rec.OrderStatus.IsValid() {
		rec.OrderStatus = enums.DefaultOrderStatus
	}
	if !rec.PaymentStatus.IsValid() {
		rec.PaymentStatus = enums.DefaultPaymentStatus
	}
	if order.CustomerID != nil {
		rec.CustomerID = order.CustomerID.String()
	}
	rec.Items = make([]OrderItemRecord, 0, len(order.Items))
	for _, item := range order.Items {
		rec.Items = append(rec.Items, OrderItemRecord{
			Name:     item.Name,
			Category: item.Category,
			Price:    sanitizeAmount(item.Price),
			Quantity: sanitizeQuantity(item.Quantity),
		})
	}
	return rec
}

// OrderRecordsFromModels converts a slice of stored orders preserving order.
func OrderRecordsFromModels(orders []models.Order) []OrderRecord {
	out := make([]OrderRecord, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderRecordFromModel(order))
	}
	return out
}

// CustomerRecordsFromModels converts stored customers into engine records.
func CustomerRecordsFromModels(customers []models.Customer) []CustomerRecord {
	out := make([]CustomerRecord, 0, len(customers))
	for _, customer := range customers {
		out = append(out, CustomerRecord{
			ID:            customer.ID.String(),
			Email:         customer.Email,
			EmailVerified: customer.EmailVerified,
			CreatedAt:     customer.CreatedAt,
		})
	}
	return out
}

// ProductRecordsFromModels converts stored products into engine records.
func ProductRecordsFromModels(products []models.Product) []ProductRecord {
	out := make([]ProductRecord, 0, len(products))
	for _, product := range products {
		out = append(out, ProductRecord{
			ID:       product.ID.String(),
			Name:     product.Name,
			Category: product.Category,
			Stock:    product.Stock,
		})
	}
	return out
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func sanitizeQuantity(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
