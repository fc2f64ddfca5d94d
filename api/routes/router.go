package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vogant/storefront-backend/api/controllers"
	"github.com/vogant/storefront-backend/api/middleware"
	"github.com/vogant/storefront-backend/internal/analytics"
	"github.com/vogant/storefront-backend/internal/auth"
	"github.com/vogant/storefront-backend/internal/customers"
	"github.com/vogant/storefront-backend/internal/orders"
	"github.com/vogant/storefront-backend/internal/products"
	"github.com/vogant/storefront-backend/pkg/config"
	"github.com/vogant/storefront-backend/pkg/db"
	"github.com/vogant/storefront-backend/pkg/logger"
	"github.com/vogant/storefront-backend/pkg/metrics"
	"github.com/vogant/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	authService auth.Service,
	analyticsService analytics.Service,
	customersService customers.Service,
	ordersService orders.Service,
	productsService products.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		if redisClient != nil {
			r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
		} else {
			r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, nil))
		}
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	loginLimit := func(next http.Handler) http.Handler { return next }
	if redisClient != nil {
		loginLimit = middleware.LoginRateLimit(cfg.AuthRateLimit, redisClient, logg)
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(loginLimit).Post("/login", controllers.AuthLogin(authService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/", controllers.AnalyticsSnapshot(analyticsService, logg))
			r.Get("/export", controllers.AnalyticsExport(analyticsService, cfg.Analytics, httpMetrics, logg))
			r.Get("/low-stock", controllers.AnalyticsLowStock(analyticsService, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomersList(customersService, logg))
			r.Get("/stats", controllers.CustomersStats(customersService, logg))
			r.Get("/{id}/orders", controllers.CustomerOrders(customersService, ordersService, logg))
		})

		r.Patch("/orders/{id}/status", controllers.OrderUpdateStatus(ordersService, logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.ProductCreate(productsService, logg))
			r.Get("/", controllers.ProductList(productsService, logg))
			r.Get("/{id}", controllers.ProductGet(productsService, logg))
			r.Patch("/{id}", controllers.ProductUpdate(productsService, logg))
			r.Delete("/{id}", controllers.ProductDelete(productsService, logg))
		})
	})

	return r
}
