package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vogant/storefront-backend/internal/analytics"
	"github.com/vogant/storefront-backend/internal/auth"
	"github.com/vogant/storefront-backend/internal/customers"
	"github.com/vogant/storefront-backend/internal/orders"
	"github.com/vogant/storefront-backend/internal/products"
	pkgauth "github.com/vogant/storefront-backend/pkg/auth"
	"github.com/vogant/storefront-backend/pkg/config"
	"github.com/vogant/storefront-backend/pkg/db/models"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
	"github.com/vogant/storefront-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubAuthService struct{}

func (stubAuthService) Login(context.Context, auth.LoginRequest) (*auth.LoginResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

type stubAnalyticsService struct{}

func (stubAnalyticsService) Snapshot(context.Context, analytics.Window) (analytics.MetricsSnapshot, error) {
	return analytics.MetricsSnapshot{}, nil
}

func (stubAnalyticsService) LowStock(context.Context) (analytics.StockReport, error) {
	return analytics.StockReport{}, nil
}

type stubCustomersService struct{}

func (stubCustomersService) List(context.Context, customers.ListParams) (*customers.ListResult, error) {
	return &customers.ListResult{}, nil
}

func (stubCustomersService) Get(context.Context, uuid.UUID) (*models.Customer, error) {
	return &models.Customer{}, nil
}

func (stubCustomersService) Stats(context.Context) (*customers.Stats, error) {
	return &customers.Stats{}, nil
}

type stubOrdersService struct{}

func (stubOrdersService) UpdateStatus(_ context.Context, input orders.UpdateStatusInput) (*models.Order, error) {
	return &models.Order{ID: input.OrderID}, nil
}

func (stubOrdersService) ListCustomerOrders(context.Context, orders.ListCustomerOrdersInput) ([]models.Order, error) {
	return nil, nil
}

type stubProductsService struct{}

func (stubProductsService) Create(context.Context, products.CreateProductInput) (*models.Product, error) {
	return &models.Product{}, nil
}

func (stubProductsService) Get(context.Context, uuid.UUID) (*models.Product, error) {
	return &models.Product{}, nil
}

func (stubProductsService) List(context.Context, string) ([]models.Product, error) {
	return nil, nil
}

func (stubProductsService) Update(context.Context, uuid.UUID, products.UpdateProductInput) (*models.Product, error) {
	return &models.Product{}, nil
}

func (stubProductsService) Delete(context.Context, uuid.UUID) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "issuer",
			ExpirationMinutes: 60,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		nil, // redis
		nil, // metrics
		nil, // metrics handler
		stubAuthService{},
		stubAnalyticsService{},
		stubCustomersService{},
		stubOrdersService{},
		stubProductsService{},
	)
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		AdminID: uuid.New(),
		Email:   "admin@vogant.in",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
		if got := resp.Header().Get("X-Vogant-Env"); got != "test" {
			t.Fatalf("expected env header, got %q", got)
		}
	}
}

func TestAdminGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/v1/analytics"},
		{http.MethodGet, "/api/admin/v1/analytics/low-stock"},
		{http.MethodGet, "/api/admin/v1/customers"},
		{http.MethodGet, "/api/admin/v1/products"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token got %d", p.path, resp.Code)
		}
	}
}

func TestAdminGroupAcceptsValidJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/analytics", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestAnalyticsRejectsBadRange(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/analytics?range=fortnight", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad range got %d", resp.Code)
	}
}

func TestExportServesAttachment(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/analytics/export?format=csv", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for csv export got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := resp.Header().Get("Content-Disposition"); !strings.Contains(got, "analytics-report-") {
		t.Fatalf("expected report filename in disposition, got %q", got)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/analytics/export?format=docx", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown format got %d", resp.Code)
	}
}

func TestLoginRouteRejectsBadPayload(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestOrderStatusRoute(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	body := `{"status":"Shipped"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/"+uuid.NewString()+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for status update got %d", resp.Code)
	}

	var envelope struct {
		Data orders.OrderResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
