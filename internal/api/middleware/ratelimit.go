package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HitCounter counts requests per key within a TTL window (Redis-backed in
// production).
type HitCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit rejects clients that exceed limit requests per window on the
// wrapped routes, keyed by client IP and path. A failing counter store fails
// open.
func RateLimit(counter HitCounter, limit int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP() + ":" + c.Path()

			n, err := counter.Incr(c.Request().Context(), key, window)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if n > limit {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}
			return next(c)
		}
	}
}
