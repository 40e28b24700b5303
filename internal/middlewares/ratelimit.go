package middlewares

import (
	"net"
	"net/http"

	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/ratelimit"
)

// RateLimitMiddleware limits requests per client IP using the given
// limiter. A limiter failure is logged and the request is allowed through:
// losing the rate limit must not take logins down with it.
//
// trustProxy controls whether X-Real-IP is honored. Enable it only when
// the server sits behind a reverse proxy that sets the header, otherwise
// any client could pick its own bucket.
func RateLimitMiddleware(limiter ratelimit.Limiter, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Allow(r.Context(), clientIP(r, trustProxy))
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				writeGateError(w, http.StatusTooManyRequests, "rate_limited", "too many attempts, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if ip := r.Header.Get("X-Real-IP"); trustProxy && ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
