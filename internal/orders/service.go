package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vogant/storefront-backend/pkg/db/models"
	"github.com/vogant/storefront-backend/pkg/enums"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// UpdateStatusInput carries an admin's status-change request.
type UpdateStatusInput struct {
	OrderID   uuid.UUID
	Requested string
}

// ListCustomerOrdersInput narrows the per-customer order listing.
type ListCustomerOrdersInput struct {
	CustomerID uuid.UUID
	Query      string
	Status     string
}

// Service defines the order operations the admin surface exposes.
type Service interface {
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.Order, error)
	ListCustomerOrders(ctx context.Context, input ListCustomerOrdersInput) ([]models.Order, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.Order, error) {
	if input.OrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	var updated *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.FindByID(ctx, input.OrderID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		next, err := Transition(order.OrderStatus, input.Requested)
		if err != nil {
			return err
		}

		if next != order.OrderStatus {
			if err := repo.UpdateStatus(ctx, order.ID, next); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
			}
			order.OrderStatus = next
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) ListCustomerOrders(ctx context.Context, input ListCustomerOrdersInput) ([]models.Order, error) {
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}

	filters := CustomerOrderFilters{Query: input.Query}
	if input.Status != "" {
		status, err := enums.ParseOrderStatus(input.Status)
		if err != nil {
			return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid order status %q", input.Status)
		}
		filters.Status = &status
	}

	orders, err := s.repo.ListByCustomer(ctx, input.CustomerID, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customer orders")
	}
	return orders, nil
}
