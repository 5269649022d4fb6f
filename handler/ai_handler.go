// ABOUTME: This file implements the direct AI endpoints: summary, translate,
// ABOUTME: fact-check verdict lookup, and headline rewriting
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/service"
)

// AIHandler serves the enrichment-backed request/response endpoints.
type AIHandler struct {
	ai     service.AIService
	logger *slog.Logger
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(ai service.AIService, logger *slog.Logger) *AIHandler {
	return &AIHandler{ai: ai, logger: logger}
}

// SummaryRequest is the body of POST /summary. Exactly one of NewsID and
// Text must be set.
type SummaryRequest struct {
	NewsID *int64 `json:"news_id"`
	Text   string `json:"text"`
}

// SummaryResponse is returned from POST /summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// HandleSummary handles POST /summary.
func (h *AIHandler) HandleSummary(c echo.Context) error {
	var req SummaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	summary, err := h.ai.Summary(c.Request().Context(), req.NewsID, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SummaryResponse{Summary: summary})
}

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

// HandleTranslate handles POST /translate.
func (h *AIHandler) HandleTranslate(c echo.Context) error {
	var req TranslateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.Text == "" || req.TargetLanguage == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text and target_language are required")
	}

	translation, err := h.ai.Translate(c.Request().Context(), req.Text, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, translation)
}

// HandleVerdict handles GET /verify/{news_id}. Answers 404 until the
// fact-check pipeline has produced a verdict for the item.
func (h *AIHandler) HandleVerdict(c echo.Context) error {
	newsID, err := pathID(c, "news_id")
	if err != nil {
		return err
	}

	verdict, err := h.ai.Verdict(c.Request().Context(), newsID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, verdict)
}

// RewriteRequest is the body of POST /ai/rewrite_headline.
type RewriteRequest struct {
	Text string `json:"text"`
}

// RewriteResponse is returned from POST /ai/rewrite_headline.
type RewriteResponse struct {
	Headline string `json:"headline"`
}

// HandleRewriteHeadline handles POST /ai/rewrite_headline.
func (h *AIHandler) HandleRewriteHeadline(c echo.Context) error {
	var req RewriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	headline, err := h.ai.RewriteHeadline(c.Request().Context(), req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RewriteResponse{Headline: headline})
}
