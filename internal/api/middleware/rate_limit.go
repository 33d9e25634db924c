package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/zatekoja/nearbycare/internal/api/handlers"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
	"github.com/zatekoja/nearbycare/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/nearbycare/pkg/errors"
)

// RateLimitMiddleware throttles callers by client IP. Limiter failures let
// the request through.
func RateLimitMiddleware(limiter providers.RateLimiter, metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				observability.LoggerFromContext(r.Context()).Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			if !result.Allowed {
				observability.RecordRateLimited(r.Context(), metrics, r.URL.Path)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(result.ResetIn.Seconds()))))
				handlers.RespondWithAppError(w, r, apperrors.NewRateLimitedError("rate_limited"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the peer address
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
