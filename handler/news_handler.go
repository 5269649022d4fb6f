// ABOUTME: This file implements news submission and all feed listing endpoints
// ABOUTME: Submission answers 202 before enrichment; 503 when the queue is full
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"news-hub/domain"
	"news-hub/service"
)

// NewsHandler serves submission and feed resolution endpoints.
type NewsHandler struct {
	ingestion service.IngestionService
	feeds     service.FeedService
	logger    *slog.Logger
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(ingestion service.IngestionService, feeds service.FeedService, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{ingestion: ingestion, feeds: feeds, logger: logger}
}

// SubmitResponse is returned from POST /news/add.
type SubmitResponse struct {
	NewsID int64  `json:"news_id"`
	Status string `json:"status"`
}

// HandleSubmit handles POST /news/add. The item is stored and queued for
// enrichment; the response never waits for the pipeline.
func (h *NewsHandler) HandleSubmit(c echo.Context) error {
	ctx := c.Request().Context()

	var sub domain.NewsSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	id, err := h.ingestion.Submit(ctx, &sub)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, SubmitResponse{NewsID: id, Status: "accepted"})
}

// HandleFeed handles GET /news/{user_id}.
func (h *NewsHandler) HandleFeed(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", 0)

	items, err := h.feeds.Feed(c.Request().Context(), chatID, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// HandleSearch handles GET /news/search?query=...
func (h *NewsHandler) HandleSearch(c echo.Context) error {
	query := c.QueryParam("query")
	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", 0)

	items, err := h.feeds.Search(c.Request().Context(), query, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// HandleDigest handles GET /digest/{user_id}?hours=N.
func (h *NewsHandler) HandleDigest(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	hours := queryInt(c, "hours", 24)
	limit := queryInt(c, "limit", 0)

	// On-demand digests are a recap, so seen items stay in.
	items, err := h.feeds.Digest(c.Request().Context(), chatID, time.Duration(hours)*time.Hour, limit, false)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// HandleRecommend handles GET /recommend/{user_id}.
func (h *NewsHandler) HandleRecommend(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 0)

	items, err := h.feeds.Recommend(c.Request().Context(), chatID, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// HandleTrending handles GET /trending.
func (h *NewsHandler) HandleTrending(c echo.Context) error {
	limit := queryInt(c, "limit", 0)

	items, err := h.feeds.Trending(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// HandlePublic handles GET /api/news, the shared non-personalized listing.
func (h *NewsHandler) HandlePublic(c echo.Context) error {
	q := &domain.PublicQuery{
		Topic:  c.QueryParam("topic"),
		Lang:   c.QueryParam("lang"),
		Tone:   c.QueryParam("tone"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	items, err := h.feeds.Public(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}
