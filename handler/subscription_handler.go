// ABOUTME: This file implements digest subscription endpoints
// ABOUTME: Unsubscribing deactivates the row; dispatch history is kept
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/service"
)

// SubscriptionHandler serves the digest subscription endpoints.
type SubscriptionHandler struct {
	subscriptions service.SubscriptionService
	logger        *slog.Logger
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(subscriptions service.SubscriptionService, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions, logger: logger}
}

// SubscribeRequest is the body of POST /subscriptions/update.
type SubscribeRequest struct {
	UserID    int64  `json:"user_id"`
	Frequency string `json:"frequency"`
}

// HandleSubscribe handles POST /subscriptions/update.
func (h *SubscriptionHandler) HandleSubscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	if err := h.subscriptions.Subscribe(c.Request().Context(), req.UserID, req.Frequency); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}

// UnsubscribeRequest is the body of POST /subscriptions/unsubscribe.
type UnsubscribeRequest struct {
	UserID int64 `json:"user_id"`
}

// HandleUnsubscribe handles POST /subscriptions/unsubscribe.
func (h *SubscriptionHandler) HandleUnsubscribe(c echo.Context) error {
	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	if err := h.subscriptions.Unsubscribe(c.Request().Context(), req.UserID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}
