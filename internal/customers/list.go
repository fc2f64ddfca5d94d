package customers

import (
	"time"

	"github.com/google/uuid"

	pkgpagination "github.com/vogant/storefront-backend/pkg/pagination"
)

// ListParams holds roster listing inputs.
type ListParams struct {
	pkgpagination.Params
}

// ListResult is one roster page plus the cursor for the next one.
type ListResult struct {
	Items  []RosterItem `json:"items"`
	Cursor string       `json:"cursor"`
}

// RosterItem is one customer row with their lifetime order figures.
type RosterItem struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	DisplayName   *string   `json:"display_name,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	OrderCount    int       `json:"order_count"`
	TotalSpent    float64   `json:"total_spent"`
	CreatedAt     time.Time `json:"created_at"`
}

// Stats summarizes the roster for the admin dashboard header.
type Stats struct {
	Total        int64 `json:"total"`
	Verified     int64 `json:"verified"`
	Unverified   int64 `json:"unverified"`
	NewThisMonth int64 `json:"new_this_month"`
}

type listQuery struct {
	limit  int
	cursor *pkgpagination.Cursor
}
