// ABOUTME: This file implements scalar filter and blocklist endpoints
// ABOUTME: Blocks always win over filters and custom feeds downstream
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/domain"
	"news-hub/service"
)

// FilterHandler serves the per-user filter endpoints.
type FilterHandler struct {
	filters service.FilterService
	logger  *slog.Logger
}

// NewFilterHandler creates a new filter handler.
func NewFilterHandler(filters service.FilterService, logger *slog.Logger) *FilterHandler {
	return &FilterHandler{filters: filters, logger: logger}
}

// FilterUpdateRequest is the body of POST /filters/update.
type FilterUpdateRequest struct {
	UserID      int64   `json:"user_id"`
	Tag         *string `json:"tag"`
	Category    *string `json:"category"`
	Source      *string `json:"source"`
	Language    *string `json:"language"`
	Country     *string `json:"country"`
	ContentType *string `json:"content_type"`
}

// HandleUpdate handles POST /filters/update. Omitted fields clear their
// constraint; the stored filter is replaced wholesale.
func (h *FilterHandler) HandleUpdate(c echo.Context) error {
	var req FilterUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	filter := &domain.Filter{
		Tag:         req.Tag,
		Category:    req.Category,
		Source:      req.Source,
		Language:    req.Language,
		Country:     req.Country,
		ContentType: req.ContentType,
	}

	if err := h.filters.Update(c.Request().Context(), req.UserID, filter); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}

// HandleGet handles GET /filters/{user_id}.
func (h *FilterHandler) HandleGet(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	filter, err := h.filters.Get(c.Request().Context(), chatID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, filter)
}

// HandleReset handles DELETE /filters/reset/{user_id}.
func (h *FilterHandler) HandleReset(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.filters.Reset(c.Request().Context(), chatID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}

// BlockRequest is the body of POST /block.
type BlockRequest struct {
	UserID    int64  `json:"user_id"`
	BlockType string `json:"block_type"`
	Value     string `json:"value"`
}

// HandleBlock handles POST /block.
func (h *FilterHandler) HandleBlock(c echo.Context) error {
	var req BlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	if err := h.filters.Block(c.Request().Context(), req.UserID, req.BlockType, req.Value); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}
