// ABOUTME: This file provides HTTP request/response logging middleware
// ABOUTME: Emits structured access logs with timing and request context
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"news-hub/utils/logger"
)

func LoggingMiddleware(contextLogger *logger.ContextLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			start := time.Now()

			ctx := logger.WithOperation(req.Context(), req.Method+" "+req.URL.Path)
			c.SetRequest(req.WithContext(ctx))

			contextLogger.WithContext(ctx).With(
				"method", req.Method,
				"path", req.URL.Path,
				"ip_address", c.RealIP(),
				"user_agent", req.UserAgent(),
			).Info("request started")

			err := next(c)

			duration := time.Since(start)

			contextLogger.WithContext(ctx).With(
				"log_type", "access",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"response_size", res.Size,
				"ip_address", c.RealIP(),
				"user_agent", req.UserAgent(),
				"duration_ms", duration.Milliseconds(),
			).Info("request completed")

			return err
		}
	}
}
