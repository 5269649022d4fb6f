// ABOUTME: This file implements the HTTP client for the chat front-end gateway
// ABOUTME: Disabled mode turns sends into logged no-ops for local runs
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"news-hub/config"
	"news-hub/domain"
	"news-hub/utils"
)

type chatNotifier struct {
	cfg     config.ChatConfig
	client  *http.Client
	breaker *utils.CircuitBreaker
	logger  *slog.Logger
}

// NewChatNotifier creates the chat gateway client. A circuit breaker
// guards the gateway so a dead front-end cannot stall dispatch runs.
func NewChatNotifier(cfg config.ChatConfig, logger *slog.Logger) ChatNotifier {
	threshold := cfg.BreakerThreshold
	if threshold <= 0 {
		threshold = 5
	}
	cooldown := cfg.BreakerCooldown
	if cooldown <= 0 {
		cooldown = time.Minute
	}

	return &chatNotifier{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: utils.NewCircuitBreaker(threshold, cooldown),
		logger:  logger,
	}
}

type digestPayload struct {
	ChatID int64          `json:"chat_id"`
	Items  []*domain.News `json:"items"`
}

type singlePayload struct {
	ChatID int64        `json:"chat_id"`
	Item   *domain.News `json:"item"`
}

// SendDigest delivers a digest batch to the chat gateway.
func (n *chatNotifier) SendDigest(ctx context.Context, chatID int64, items []*domain.News) error {
	if !n.cfg.Enabled {
		n.logger.InfoContext(ctx, "chat gateway disabled, digest dropped",
			"chat_id", chatID, "items", len(items))
		return nil
	}

	return n.post(ctx, "/send_digest", digestPayload{ChatID: chatID, Items: items})
}

// SendSingle delivers one item to the chat gateway.
func (n *chatNotifier) SendSingle(ctx context.Context, chatID int64, item *domain.News) error {
	if !n.cfg.Enabled {
		n.logger.InfoContext(ctx, "chat gateway disabled, notification dropped",
			"chat_id", chatID, "news_id", item.ID)
		return nil
	}

	return n.post(ctx, "/send_single", singlePayload{ChatID: chatID, Item: item})
}

func (n *chatNotifier) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode chat payload: %w", err)
	}

	return n.breaker.Call(func() error {
		return n.send(ctx, path, body)
	})
}

func (n *chatNotifier) send(ctx context.Context, path string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Host+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("chat gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("chat gateway returned status %d", resp.StatusCode)
	}

	return nil
}
