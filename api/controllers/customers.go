package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vogant/storefront-backend/api/responses"
	"github.com/vogant/storefront-backend/api/validators"
	"github.com/vogant/storefront-backend/internal/customers"
	"github.com/vogant/storefront-backend/internal/orders"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
	"github.com/vogant/storefront-backend/pkg/logger"
	pkgpagination "github.com/vogant/storefront-backend/pkg/pagination"
)

// CustomersList serves one roster page.
func CustomersList(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pkgpagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), customers.ListParams{
			Params: pkgpagination.Params{
				Limit:  limit,
				Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
			},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CustomersStats serves the roster summary counters.
func CustomersStats(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

// CustomerOrders serves one customer's order history.
func CustomerOrders(customerSvc customers.Service, orderSvc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid customer id"))
			return
		}

		// 404 before an empty list when the customer does not exist.
		if _, err := customerSvc.Get(r.Context(), customerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := orderSvc.ListCustomerOrders(r.Context(), orders.ListCustomerOrdersInput{
			CustomerID: customerID,
			Query:      validators.SanitizeString(r.URL.Query().Get("q"), 120),
			Status:     strings.TrimSpace(r.URL.Query().Get("status")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]orders.OrderResponse, len(rows))
		for i, row := range rows {
			items[i] = orders.ToOrderResponse(row)
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}
