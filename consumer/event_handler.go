// ABOUTME: This file routes stream events into the ingestion pipeline
// ABOUTME: Invalid payloads are dropped; overload errors propagate for redelivery
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"news-hub/domain"
	"news-hub/service"
)

// Event type vocabulary.
const (
	EventTypeNewsSubmitted = "NewsSubmitted"
)

// NewsEventHandler feeds submission events into the ingestion service.
type NewsEventHandler struct {
	ingestion service.IngestionService
	logger    *slog.Logger
}

// NewNewsEventHandler creates a NewsEventHandler.
func NewNewsEventHandler(ingestion service.IngestionService, logger *slog.Logger) *NewsEventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NewsEventHandler{
		ingestion: ingestion,
		logger:    logger,
	}
}

// HandleEvent processes a single event based on its type.
func (h *NewsEventHandler) HandleEvent(ctx context.Context, event Event) error {
	switch event.EventType {
	case EventTypeNewsSubmitted:
		return h.handleNewsSubmitted(ctx, event)
	default:
		h.logger.Debug("ignoring unknown event type", "event_type", event.EventType)
		return nil
	}
}

// handleNewsSubmitted decodes the payload and submits it for ingestion.
// Malformed or invalid submissions are acknowledged and dropped: they will
// never succeed on redelivery. Overload errors propagate so the message
// stays pending and is retried once the queue drains.
func (h *NewsEventHandler) handleNewsSubmitted(ctx context.Context, event Event) error {
	var payload domain.NewsSubmission
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		h.logger.Error("dropping malformed NewsSubmitted payload",
			"event_id", event.EventID,
			"message_id", event.MessageID,
			"error", err,
		)
		return nil
	}

	id, err := h.ingestion.Submit(ctx, &payload)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			h.logger.Warn("dropping invalid news submission",
				"event_id", event.EventID,
				"source", payload.Source,
				"error", err,
			)
			return nil
		}
		return err
	}

	h.logger.Info("stream submission ingested",
		"news_id", id,
		"event_id", event.EventID,
		"source", payload.Source,
	)

	return nil
}
