package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/vogant/storefront-backend/api/responses"
	"github.com/vogant/storefront-backend/pkg/config"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
	"github.com/vogant/storefront-backend/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// LoginRateLimit throttles sign-in attempts with fixed-window counters in
// Redis, keyed by client IP and by a hash of the submitted email. Email
// addresses are never stored raw in limiter keys.
func LoginRateLimit(cfg config.AuthRateLimitConfig, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cfg.LoginWindow <= 0 || store == nil {
			return next
		}
		if cfg.LoginIPLimit <= 0 && cfg.LoginEmailLimit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			if cfg.LoginIPLimit > 0 && ip != "" {
				count, err := store.IncrWithTTL(ctx, "rl:login:ip:"+ip, cfg.LoginWindow)
				if err != nil {
					responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
					return
				}
				if count > int64(cfg.LoginIPLimit) {
					logBlockedLogin(ctx, logg, cfg, "ip", ip, count, cfg.LoginIPLimit)
					responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many login attempts"))
					return
				}
			}

			if cfg.LoginEmailLimit > 0 {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))

				if email := extractLoginEmail(body); email != "" {
					hash := hashValue(email)
					count, err := store.IncrWithTTL(ctx, "rl:login:email:"+hash, cfg.LoginWindow)
					if err != nil {
						responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
						return
					}
					if count > int64(cfg.LoginEmailLimit) {
						logBlockedLogin(ctx, logg, cfg, "email", hash, count, cfg.LoginEmailLimit)
						responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many login attempts"))
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func logBlockedLogin(ctx context.Context, logg *logger.Logger, cfg config.AuthRateLimitConfig, scope, key string, count int64, limit int) {
	if logg == nil {
		return
	}
	logCtx := logg.WithFields(ctx, map[string]any{
		"scope":          scope,
		"key":            key,
		"attempts":       count,
		"limit":          limit,
		"window_seconds": int(cfg.LoginWindow.Seconds()),
	})
	logg.Warn(logCtx, "auth.login.rate_limited")
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func extractLoginEmail(payload []byte) string {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(body.Email))
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
