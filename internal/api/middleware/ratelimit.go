package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userdesk/user-api/internal/api/metrics"
)

// Limiter is the rate-limit check used by RateLimit. Satisfied by the
// Redis-backed fixed-window limiter.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles requests per client IP. A limiter failure (e.g. Redis
// down) fails open: the request proceeds and the failure is logged.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RequestsThrottledTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
