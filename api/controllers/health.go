package controllers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/multierr"

	"github.com/vogant/storefront-backend/api/responses"
	"github.com/vogant/storefront-backend/pkg/config"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
	"github.com/vogant/storefront-backend/pkg/logger"
)

const envHeader = "X-Vogant-Env"

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every backing store answers a ping.
// All failures are combined so one probe round surfaces the full picture.
func HealthReady(cfg *config.Config, logg *logger.Logger, database, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := []struct {
			name string
			dep  pinger
		}{
			{"database", database},
			{"redis", cache},
		}

		var pingErr error
		var down []string
		for _, check := range checks {
			if check.dep == nil {
				continue
			}
			if err := check.dep.Ping(r.Context()); err != nil {
				pingErr = multierr.Append(pingErr, err)
				down = append(down, check.name)
			}
		}
		if pingErr != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, pingErr, strings.Join(down, ", ")+" unavailable"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
