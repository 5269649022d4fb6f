// ABOUTME: This file implements referral invite endpoints
// ABOUTME: Accepting a code grants the invitee a premium window exactly once
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/service"
)

// InviteHandler serves the referral endpoints.
type InviteHandler struct {
	referrals service.ReferralService
	logger    *slog.Logger
}

// NewInviteHandler creates a new invite handler.
func NewInviteHandler(referrals service.ReferralService, logger *slog.Logger) *InviteHandler {
	return &InviteHandler{referrals: referrals, logger: logger}
}

// InviteGenerateRequest is the body of POST /invite/generate.
type InviteGenerateRequest struct {
	InviterUserID int64 `json:"inviter_user_id"`
}

// InviteGenerateResponse is returned from POST /invite/generate.
type InviteGenerateResponse struct {
	InviteCode string `json:"invite_code"`
}

// HandleGenerate handles POST /invite/generate.
func (h *InviteHandler) HandleGenerate(c echo.Context) error {
	var req InviteGenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.InviterUserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "inviter_user_id is required")
	}

	invite, err := h.referrals.Generate(c.Request().Context(), req.InviterUserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, InviteGenerateResponse{InviteCode: invite.InviteCode})
}

// InviteAcceptRequest is the body of POST /invite/accept.
type InviteAcceptRequest struct {
	InvitedUserID int64  `json:"invited_user_id"`
	InviteCode    string `json:"invite_code"`
}

// InviteAcceptResponse is returned from POST /invite/accept.
type InviteAcceptResponse struct {
	Status  string `json:"status"`
	Premium bool   `json:"premium"`
}

// HandleAccept handles POST /invite/accept.
func (h *InviteHandler) HandleAccept(c echo.Context) error {
	var req InviteAcceptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.InvitedUserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invited_user_id is required")
	}

	user, err := h.referrals.Accept(c.Request().Context(), req.InviteCode, req.InvitedUserID)
	if err != nil {
		return err
	}

	h.logger.InfoContext(c.Request().Context(), "invite accepted",
		"invited_user_id", user.ID, "invite_code", req.InviteCode)

	return c.JSON(http.StatusOK, InviteAcceptResponse{Status: "accepted", Premium: user.IsPremium})
}
