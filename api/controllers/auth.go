package controllers

import (
	"net/http"

	"github.com/vogant/storefront-backend/api/responses"
	"github.com/vogant/storefront-backend/api/validators"
	"github.com/vogant/storefront-backend/internal/auth"
	"github.com/vogant/storefront-backend/pkg/logger"
)

// AuthLogin handles admin credential checks and token issuance.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
