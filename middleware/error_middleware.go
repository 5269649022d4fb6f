// ABOUTME: Centralized error handling middleware for Echo framework
// ABOUTME: Maps domain sentinels and AppContextError to secure HTTP responses
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/domain"
	apperrors "news-hub/utils/errors"
)

// sentinelMapping binds one domain sentinel to its HTTP representation.
type sentinelMapping struct {
	sentinel error
	status   int
	code     string
}

// Sentinel order matters only for readability; errors.Is stops at the
// first match.
var sentinelMappings = []sentinelMapping{
	{domain.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND_ERROR"},
	{domain.ErrNewsNotFound, http.StatusNotFound, "NOT_FOUND_ERROR"},
	{domain.ErrFeedNotFound, http.StatusNotFound, "NOT_FOUND_ERROR"},
	{domain.ErrCommentNotFound, http.StatusNotFound, "NOT_FOUND_ERROR"},
	{domain.ErrSourceNotFound, http.StatusNotFound, "NOT_FOUND_ERROR"},
	{domain.ErrVerdictNotAvailable, http.StatusNotFound, "NOT_FOUND_ERROR"},
	{domain.ErrSummaryNotCached, http.StatusNotFound, "NOT_FOUND_ERROR"},

	{domain.ErrInvalidRequest, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrInvalidRating, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrInvalidAction, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrInvalidFrequency, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrInvalidBlockType, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrInvalidFeedFilter, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrUnknownModerationAction, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrInviteInvalid, http.StatusBadRequest, "VALIDATION_ERROR"},

	{domain.ErrDuplicateFeedName, http.StatusConflict, "CONFLICT_ERROR"},
	{domain.ErrDuplicateSource, http.StatusConflict, "CONFLICT_ERROR"},
	{domain.ErrDuplicateEmail, http.StatusConflict, "CONFLICT_ERROR"},
	{domain.ErrSelfReferral, http.StatusConflict, "CONFLICT_ERROR"},
	{domain.ErrAlreadyModerated, http.StatusConflict, "CONFLICT_ERROR"},

	{domain.ErrFeedNotOwned, http.StatusForbidden, "FORBIDDEN_ERROR"},

	{domain.ErrServiceOverloaded, http.StatusServiceUnavailable, "OVERLOADED_ERROR"},
	{domain.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMIT_ERROR"},
}

// mapDomainError resolves a domain sentinel anywhere in the error chain.
func mapDomainError(err error) (int, string, string, bool) {
	for _, m := range sentinelMappings {
		if errors.Is(err, m.sentinel) {
			return m.status, m.code, m.sentinel.Error(), true
		}
	}
	return 0, "", "", false
}

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
//
// Error handling priority:
// 1. AppContextError - uses ToSecureHTTPResponse() for consistent format
// 2. Domain sentinel errors - mapped to status codes via sentinelMappings
// 3. echo.HTTPError - preserves Echo's error format
// 4. Unknown errors - generic 500 response to hide internal details
func CustomHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Don't write to already committed responses
		if c.Response().Committed {
			return
		}

		requestID := c.Response().Header().Get("X-Request-ID")

		var response apperrors.SecureHTTPResponse
		var status int

		var appErr *apperrors.AppContextError
		var echoErr *echo.HTTPError

		switch {
		case errors.As(err, &appErr):
			status = appErr.HTTPStatusCode()
			response = appErr.ToSecureHTTPResponse()

			// Log full error details for internal debugging
			logger.Error("application error",
				"request_id", requestID,
				"error_id", appErr.ErrorID,
				"code", appErr.Code,
				"message", appErr.Message,
				"layer", appErr.Layer,
				"component", appErr.Component,
				"operation", appErr.Operation,
				"cause", appErr.Cause,
			)

		default:
			if mappedStatus, code, msg, ok := mapDomainError(err); ok {
				status = mappedStatus
				response = apperrors.SecureHTTPResponse{
					Error: apperrors.SecureErrorDetail{
						Code:      code,
						Message:   msg,
						Retryable: apperrors.IsRetryableHTTPStatus(status),
					},
				}

				logger.Warn("domain error",
					"request_id", requestID,
					"status", status,
					"error", err.Error(),
				)
				break
			}

			if errors.As(err, &echoErr) {
				status = echoErr.Code
				msg := "An error occurred"
				if m, ok := echoErr.Message.(string); ok {
					msg = m
				}

				// For 5xx errors, hide the actual message
				if status >= 500 {
					msg = "An unexpected error occurred. Please try again later."
				}

				response = apperrors.SecureHTTPResponse{
					Error: apperrors.SecureErrorDetail{
						Code:      "HTTP_ERROR",
						Message:   msg,
						Retryable: apperrors.IsRetryableHTTPStatus(status),
					},
				}

				logger.Warn("HTTP error",
					"request_id", requestID,
					"status", status,
					"message", msg,
				)
				break
			}

			// Unknown error type - treat as internal error
			status = http.StatusInternalServerError
			response = apperrors.SecureHTTPResponse{
				Error: apperrors.SecureErrorDetail{
					Code:      "INTERNAL_ERROR",
					Message:   "An unexpected error occurred. Please try again later.",
					Retryable: false,
				},
			}

			// Log the actual error for debugging (never expose to client)
			logger.Error("unhandled error",
				"request_id", requestID,
				"error", err.Error(),
			)
		}

		if err := c.JSON(status, response); err != nil {
			logger.Error("failed to send error response",
				"request_id", requestID,
				"error", err,
			)
		}
	}
}
