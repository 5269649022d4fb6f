package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-hub/config"
	"news-hub/ratelimit"
)

func rateLimitTestSetup(t *testing.T, limiter *ratelimit.CallerLimiter) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.Use(RateLimitMiddleware(limiter))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("should answer 429 once the budget is gone", func(t *testing.T) {
		limiter, err := ratelimit.NewCallerLimiter(config.RateLimitConfig{
			RequestInterval: time.Minute,
			Burst:           2,
		}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)

		e := rateLimitTestSetup(t, limiter)

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "RATE_LIMIT_ERROR")
		assert.Contains(t, rec.Body.String(), `"retryable":true`)
	})

	t.Run("should pass everything through with a nil limiter", func(t *testing.T) {
		e := rateLimitTestSetup(t, nil)

		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
