// ABOUTME: This file implements custom feed creation, listing, and switching
// ABOUTME: Switching to feed ID 0 returns the user to the scalar filter
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/service"
)

// CustomFeedHandler serves the named-feed endpoints.
type CustomFeedHandler struct {
	customFeeds service.CustomFeedService
	logger      *slog.Logger
}

// NewCustomFeedHandler creates a new custom feed handler.
func NewCustomFeedHandler(customFeeds service.CustomFeedService, logger *slog.Logger) *CustomFeedHandler {
	return &CustomFeedHandler{customFeeds: customFeeds, logger: logger}
}

// CustomFeedCreateRequest is the body of POST /custom_feeds/create.
type CustomFeedCreateRequest struct {
	UserID   int64               `json:"user_id"`
	FeedName string              `json:"feed_name"`
	Filters  map[string][]string `json:"filters"`
}

// CustomFeedCreateResponse is returned from POST /custom_feeds/create.
type CustomFeedCreateResponse struct {
	FeedID int64 `json:"feed_id"`
}

// HandleCreate handles POST /custom_feeds/create.
func (h *CustomFeedHandler) HandleCreate(c echo.Context) error {
	var req CustomFeedCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	id, err := h.customFeeds.Create(c.Request().Context(), req.UserID, req.FeedName, req.Filters)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CustomFeedCreateResponse{FeedID: id})
}

// HandleList handles GET /custom_feeds/{user_id}.
func (h *CustomFeedHandler) HandleList(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	feeds, err := h.customFeeds.List(c.Request().Context(), chatID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feeds)
}

// CustomFeedSwitchRequest is the body of POST /custom_feeds/switch.
type CustomFeedSwitchRequest struct {
	UserID int64 `json:"user_id"`
	FeedID int64 `json:"feed_id"`
}

// HandleSwitch handles POST /custom_feeds/switch. FeedID 0 clears the
// selection.
func (h *CustomFeedHandler) HandleSwitch(c echo.Context) error {
	var req CustomFeedSwitchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	if err := h.customFeeds.Switch(c.Request().Context(), req.UserID, req.FeedID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}
