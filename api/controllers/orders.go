package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vogant/storefront-backend/api/responses"
	"github.com/vogant/storefront-backend/api/validators"
	"github.com/vogant/storefront-backend/internal/orders"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
	"github.com/vogant/storefront-backend/pkg/logger"
)

type updateOrderStatusBody struct {
	Status string `json:"status" validate:"required"`
}

// OrderUpdateStatus moves an order to the requested fulfilment status.
func OrderUpdateStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid order id"))
			return
		}

		var body updateOrderStatusBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), orders.UpdateStatusInput{
			OrderID:   orderID,
			Requested: body.Status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders.ToOrderResponse(*updated))
	}
}
