package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/vogant/storefront-backend/pkg/config"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
)

// Service exposes the reporting engine over the record store. Every call
// recomputes from a fresh snapshot; concurrent calls share nothing mutable.
type Service interface {
	Snapshot(ctx context.Context, window Window) (MetricsSnapshot, error)
	LowStock(ctx context.Context) (StockReport, error)
}

type service struct {
	repo Repository
	cfg  config.AnalyticsConfig
	now  func() time.Time
}

// NewService builds the analytics service with the required dependencies.
func NewService(repo Repository, cfg config.AnalyticsConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("analytics repository required")
	}
	return &service{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}, nil
}

func (s *service) Snapshot(ctx context.Context, window Window) (MetricsSnapshot, error) {
	now := s.now()

	orderModels, err := s.repo.ListOrders(ctx)
	if err != nil {
		return MetricsSnapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders snapshot")
	}
	customerModels, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return MetricsSnapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customers snapshot")
	}

	orders := OrderRecordsFromModels(orderModels)
	windowed, err := FilterOrders(orders, window, now)
	if err != nil {
		return MetricsSnapshot{}, err
	}

	customers := CustomerRecordsFromModels(customerModels)
	return Aggregate(windowed, customers, s.cfg.GSTRatePercent, now), nil
}

func (s *service) LowStock(ctx context.Context) (StockReport, error) {
	productModels, err := s.repo.ListProducts(ctx)
	if err != nil {
		return StockReport{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products snapshot")
	}
	products := ProductRecordsFromModels(productModels)
	return ScanStock(products, s.cfg.LowStockThreshold, s.cfg.CriticalThreshold), nil
}
