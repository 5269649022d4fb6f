// ABOUTME: This file implements registration, profile, and analytics endpoints
// ABOUTME: Registration is idempotent; re-registering updates only sent fields
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/domain"
	"news-hub/service"
)

// UserHandler serves the user-facing account endpoints.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// RegisterResponse is returned from POST /users/register.
type RegisterResponse struct {
	UserID  int64 `json:"user_id"`
	ChatID  int64 `json:"chat_id"`
	Premium bool  `json:"premium"`
}

// HandleRegister handles POST /users/register.
func (h *UserHandler) HandleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	var params domain.RegisterParams
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	user, err := h.users.Register(ctx, &params)
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "chat_id", user.ChatID)

	return c.JSON(http.StatusOK, RegisterResponse{
		UserID:  user.ID,
		ChatID:  user.ChatID,
		Premium: user.IsPremium,
	})
}

// HandleProfile handles GET /users/{user_id}/profile.
func (h *UserHandler) HandleProfile(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	profile, err := h.users.Profile(c.Request().Context(), chatID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// HandleAnalytics handles GET /analytics/{user_id}.
func (h *UserHandler) HandleAnalytics(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	analytics, err := h.users.Analytics(c.Request().Context(), chatID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, analytics)
}

// HandleGamificationStats handles GET /users/{user_id}/gamification_stats.
func (h *UserHandler) HandleGamificationStats(c echo.Context) error {
	chatID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	stats, err := h.users.GamificationStats(c.Request().Context(), chatID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
