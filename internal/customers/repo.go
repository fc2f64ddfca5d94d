package customers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vogant/storefront-backend/pkg/db/models"
)

// Repository exposes customer roster persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a customer repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// rosterRow is the scan target for the roster join. Order figures come
// from a LEFT JOIN so customers without orders still appear with zeros.
type rosterRow struct {
	ID            uuid.UUID
	Email         string
	DisplayName   *string
	EmailVerified bool
	OrderCount    int
	TotalSpent    float64
	CreatedAt     time.Time
}

// List returns roster rows with per-customer order count and total spent,
// newest customers first, using cursor pagination.
func (r *Repository) List(ctx context.Context, opts listQuery) ([]rosterRow, error) {
	query := r.db.WithContext(ctx).
		Table("customers").
		Select("customers.id, customers.email, customers.display_name, customers.email_verified, customers.created_at, COUNT(orders.id) AS order_count, COALESCE(SUM(orders.total), 0) AS total_spent").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id").
		Group("customers.id, customers.email, customers.display_name, customers.email_verified, customers.created_at")

	if opts.cursor != nil {
		query = query.Where("(customers.created_at < ?) OR (customers.created_at = ? AND customers.id < ?)", opts.cursor.CreatedAt, opts.cursor.CreatedAt, opts.cursor.ID)
	}

	query = query.Order("customers.created_at DESC").Order("customers.id DESC").Limit(opts.limit)

	var rows []rosterRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single customer.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// CountAll returns the full roster size.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}

// CountVerified returns how many customers have confirmed their email.
func (r *Repository) CountVerified(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("email_verified = ?", true).
		Count(&count).Error
	return count, err
}

// CountCreatedSince returns how many customers signed up at or after the cutoff.
func (r *Repository) CountCreatedSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("created_at >= ?", cutoff).
		Count(&count).Error
	return count, err
}
