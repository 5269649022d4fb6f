// ABOUTME: This file implements the admin moderation endpoint
// ABOUTME: Routed behind the service-token guard when auth is enabled
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/service"
)

// AdminHandler serves moderation endpoints.
type AdminHandler struct {
	moderation service.ModerationService
	logger     *slog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(moderation service.ModerationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{moderation: moderation, logger: logger}
}

// ModerateRequest is the body of POST /admin/moderate.
type ModerateRequest struct {
	AdminUserID int64          `json:"admin_user_id"`
	ActionType  string         `json:"action_type"`
	TargetID    int64          `json:"target_id"`
	Details     map[string]any `json:"details"`
}

// HandleModerate handles POST /admin/moderate.
func (h *AdminHandler) HandleModerate(c echo.Context) error {
	var req ModerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.AdminUserID == 0 || req.TargetID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "admin_user_id and target_id are required")
	}

	if err := h.moderation.Moderate(c.Request().Context(), req.AdminUserID, req.ActionType, req.TargetID, req.Details); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}
