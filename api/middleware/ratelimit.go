package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// getRateLimitForEndpoint picks the limit class for a request. Auth
// endpoints are the strictest; search and bill creation hit the database
// hardest and get their own budget.
func (mw *Middleware) getRateLimitForEndpoint(path, method string) (int, time.Duration) {
	if strings.HasPrefix(path, "/auth/login") ||
		strings.HasPrefix(path, "/auth/register") ||
		strings.HasPrefix(path, "/auth/otp") {
		return mw.cfg.RateLimit.AuthLimit, mw.cfg.RateLimit.AuthWindow
	}

	if strings.Contains(path, "/search") ||
		(method == http.MethodPost && strings.Contains(path, "/bills")) {
		return mw.cfg.RateLimit.ExpensiveLimit, mw.cfg.RateLimit.ExpensiveWindow
	}

	return mw.cfg.RateLimit.GeneralLimit, mw.cfg.RateLimit.GeneralWindow
}

// getClientIP extracts the real client IP from request headers
func (mw *Middleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// RemoteAddr is usually host:port, but may be a bare address
	// (notably IPv6) when no port was recorded.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware applies per-IP fixed window rate limiting backed
// by Redis. Cache failures fail open: a broken Redis should degrade
// throttling, not availability.
func (mw *Middleware) RateLimitMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mw.cfg.RateLimit.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			if r.URL.Path == "/" || strings.HasPrefix(r.URL.Path, "/health") {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := mw.getClientIP(r)
			limit, window := mw.getRateLimitForEndpoint(r.URL.Path, r.Method)
			key := fmt.Sprintf("%s:%s", clientIP, r.URL.Path)

			count, err := mw.tokenService.IncrementRateLimit(r.Context(), key, window)
			if err != nil {
				mw.logger.Warn("Rate limit cache error, allowing request",
					gecho.Field("error", err),
					gecho.Field("ip", clientIP),
					gecho.Field("path", r.URL.Path),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

			if count > int64(limit) {
				mw.logger.Warn("Rate limit exceeded",
					gecho.Field("ip", clientIP),
					gecho.Field("path", r.URL.Path),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
				)

				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				gecho.TooManyRequests(w,
					gecho.WithMessage("Rate limit exceeded. Please try again later."),
					gecho.Send(),
				)
				return
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

			next.ServeHTTP(w, r)
		})
	}
}
