// ABOUTME: This file implements source registration and listing endpoints
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/service"
)

// SourceHandler serves the upstream-source endpoints.
type SourceHandler struct {
	sources service.SourceService
	logger  *slog.Logger
}

// NewSourceHandler creates a new source handler.
func NewSourceHandler(sources service.SourceService, logger *slog.Logger) *SourceHandler {
	return &SourceHandler{sources: sources, logger: logger}
}

// SourceAddRequest is the body of POST /sources/add.
type SourceAddRequest struct {
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Link       string `json:"link"`
	SourceType string `json:"source_type"`
}

// SourceAddResponse is returned from POST /sources/add.
type SourceAddResponse struct {
	SourceID int64 `json:"source_id"`
}

// HandleAdd handles POST /sources/add.
func (h *SourceHandler) HandleAdd(c echo.Context) error {
	var req SourceAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	id, err := h.sources.Add(c.Request().Context(), req.UserID, req.Name, req.Link, req.SourceType)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, SourceAddResponse{SourceID: id})
}

// HandleList handles GET /sources.
func (h *SourceHandler) HandleList(c echo.Context) error {
	sources, err := h.sources.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sources)
}
