// ABOUTME: Echo middleware enforcing the per-caller request budget
// ABOUTME: Rejected requests surface as 429 via the central error handler
package middleware

import (
	"github.com/labstack/echo/v4"

	"news-hub/domain"
	"news-hub/ratelimit"
)

// RateLimitMiddleware rejects callers that exhausted their token bucket.
// A nil limiter disables the check.
func RateLimitMiddleware(limiter *ratelimit.CallerLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			if !limiter.Allow(c.RealIP()) {
				return domain.ErrRateLimited
			}

			return next(c)
		}
	}
}
