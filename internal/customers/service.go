package customers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vogant/storefront-backend/pkg/db/models"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
	pkgpagination "github.com/vogant/storefront-backend/pkg/pagination"
)

type customersRepository interface {
	List(ctx context.Context, opts listQuery) ([]rosterRow, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	CountAll(ctx context.Context) (int64, error)
	CountVerified(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service exposes the admin customer roster.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo customersRepository
	now  func() time.Time
}

// NewService builds a customers service backed by the provided repository.
func NewService(repo customersRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	limit := pkgpagination.NormalizeLimit(params.Limit)
	query := listQuery{limit: pkgpagination.LimitWithBuffer(params.Limit)}
	if params.Cursor != "" {
		cursor, err := pkgpagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.cursor = cursor
	}

	rows, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}

	nextCursor := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[limit-1]
		nextCursor = pkgpagination.EncodeCursor(pkgpagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	items := make([]RosterItem, len(rows))
	for i, row := range rows {
		items[i] = RosterItem{
			ID:            row.ID,
			Email:         row.Email,
			DisplayName:   row.DisplayName,
			EmailVerified: row.EmailVerified,
			OrderCount:    row.OrderCount,
			TotalSpent:    row.TotalSpent,
			CreatedAt:     row.CreatedAt,
		}
	}

	return &ListResult{Items: items, Cursor: nextCursor}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return customer, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count customers")
	}
	verified, err := s.repo.CountVerified(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count verified customers")
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	newThisMonth, err := s.repo.CountCreatedSince(ctx, monthStart)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count new customers")
	}

	return &Stats{
		Total:        total,
		Verified:     verified,
		Unverified:   total - verified,
		NewThisMonth: newThisMonth,
	}, nil
}
