// ABOUTME: This file implements activity logging and all social endpoints
// ABOUTME: Bookmarks, comments, ratings, reports, feedback, and polls
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/service"
)

// InteractionHandler serves engagement and activity endpoints.
type InteractionHandler struct {
	interactions service.InteractionService
	logger       *slog.Logger
}

// NewInteractionHandler creates a new interaction handler.
func NewInteractionHandler(interactions service.InteractionService, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{interactions: interactions, logger: logger}
}

// ActivityRequest is the body of POST /log_user_activity.
type ActivityRequest struct {
	UserID    int64  `json:"user_id"`
	NewsID    int64  `json:"news_id"`
	Action    string `json:"action"`
	TimeSpent int    `json:"time_spent"`
}

// HandleLogActivity handles POST /log_user_activity.
func (h *InteractionHandler) HandleLogActivity(c echo.Context) error {
	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 || req.NewsID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and news_id are required")
	}

	if err := h.interactions.LogActivity(c.Request().Context(), req.UserID, req.NewsID, req.Action, req.TimeSpent); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}

// RateRequest is the body of POST /rate.
type RateRequest struct {
	UserID int64 `json:"user_id"`
	NewsID int64 `json:"news_id"`
	Value  int   `json:"value"`
}

// HandleRate handles POST /rate. Re-rating replaces the previous value.
func (h *InteractionHandler) HandleRate(c echo.Context) error {
	var req RateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 || req.NewsID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and news_id are required")
	}

	if err := h.interactions.Rate(c.Request().Context(), req.UserID, req.NewsID, req.Value); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}

// BookmarkRequest is the body of POST /bookmarks/add.
type BookmarkRequest struct {
	UserID int64 `json:"user_id"`
	NewsID int64 `json:"news_id"`
}

// HandleAddBookmark handles POST /bookmarks/add.
func (h *InteractionHandler) HandleAddBookmark(c echo.Context) error {
	var req BookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 || req.NewsID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and news_id are required")
	}

	if err := h.interactions.AddBookmark(c.Request().Context(), req.UserID, req.NewsID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}

// HandleListBookmarks handles GET /bookmarks/{user_id}.
func (h *InteractionHandler) HandleListBookmarks(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	items, err := h.interactions.ListBookmarks(c.Request().Context(), chatID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// CommentRequest is the body of POST /comments/add.
type CommentRequest struct {
	UserID          int64  `json:"user_id"`
	NewsID          int64  `json:"news_id"`
	ParentCommentID *int64 `json:"parent_comment_id"`
	Content         string `json:"content"`
}

// CommentResponse is returned from POST /comments/add.
type CommentResponse struct {
	CommentID int64  `json:"comment_id"`
	Status    string `json:"status"`
}

// HandleAddComment handles POST /comments/add. New comments start pending
// and surface only after moderation.
func (h *InteractionHandler) HandleAddComment(c echo.Context) error {
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 || req.NewsID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and news_id are required")
	}

	id, err := h.interactions.AddComment(c.Request().Context(), req.UserID, req.NewsID, req.ParentCommentID, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CommentResponse{CommentID: id, Status: "pending"})
}

// HandleListComments handles GET /comments/{news_id}.
func (h *InteractionHandler) HandleListComments(c echo.Context) error {
	newsID, err := pathID(c, "news_id")
	if err != nil {
		return err
	}

	comments, err := h.interactions.ListComments(c.Request().Context(), newsID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comments)
}

// ReportRequest is the body of POST /report. NewsID is optional.
type ReportRequest struct {
	UserID int64  `json:"user_id"`
	NewsID *int64 `json:"news_id"`
	Reason string `json:"reason"`
}

// HandleReport handles POST /report.
func (h *InteractionHandler) HandleReport(c echo.Context) error {
	var req ReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	if err := h.interactions.Report(c.Request().Context(), req.UserID, req.NewsID, req.Reason); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}

// FeedbackRequest is the body of POST /feedback.
type FeedbackRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

// HandleFeedback handles POST /feedback.
func (h *InteractionHandler) HandleFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	if err := h.interactions.AddFeedback(c.Request().Context(), req.UserID, req.Message); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}

// PollRequest is the body of POST /polls/submit.
type PollRequest struct {
	UserID   int64  `json:"user_id"`
	NewsID   int64  `json:"news_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HandleSubmitPoll handles POST /polls/submit.
func (h *InteractionHandler) HandleSubmitPoll(c echo.Context) error {
	var req PollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.UserID == 0 || req.NewsID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and news_id are required")
	}

	if err := h.interactions.SubmitPoll(c.Request().Context(), req.UserID, req.NewsID, req.Question, req.Answer); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse)
}
