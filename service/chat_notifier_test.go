package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-hub/config"
	"news-hub/domain"
	"news-hub/service"
	"news-hub/utils"
)

func TestChatNotifier_Disabled(t *testing.T) {
	t.Run("should drop sends silently when the gateway is disabled", func(t *testing.T) {
		notifier := service.NewChatNotifier(config.ChatConfig{Enabled: false}, testLogger())

		assert.NoError(t, notifier.SendSingle(context.Background(), 777, &domain.News{ID: 1}))
		assert.NoError(t, notifier.SendDigest(context.Background(), 777, nil))
	})
}

func TestChatNotifier_Send(t *testing.T) {
	t.Run("should post the digest payload to the gateway", func(t *testing.T) {
		var got struct {
			ChatID int64          `json:"chat_id"`
			Items  []*domain.News `json:"items"`
		}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/send_digest", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		notifier := service.NewChatNotifier(config.ChatConfig{
			Enabled: true,
			Host:    srv.URL,
			Timeout: time.Second,
		}, testLogger())

		err := notifier.SendDigest(context.Background(), 777, []*domain.News{{ID: 1, Title: "a"}})

		require.NoError(t, err)
		assert.Equal(t, int64(777), got.ChatID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "a", got.Items[0].Title)
	})

	t.Run("should report gateway error statuses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		notifier := service.NewChatNotifier(config.ChatConfig{
			Enabled: true,
			Host:    srv.URL,
			Timeout: time.Second,
		}, testLogger())

		err := notifier.SendSingle(context.Background(), 777, &domain.News{ID: 1})

		assert.ErrorContains(t, err, "502")
	})
}

func TestChatNotifier_Breaker(t *testing.T) {
	t.Run("should stop calling the gateway once the circuit opens", func(t *testing.T) {
		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		notifier := service.NewChatNotifier(config.ChatConfig{
			Enabled:          true,
			Host:             srv.URL,
			Timeout:          time.Second,
			BreakerThreshold: 2,
			BreakerCooldown:  time.Minute,
		}, testLogger())

		ctx := context.Background()
		item := &domain.News{ID: 1}

		require.Error(t, notifier.SendSingle(ctx, 777, item))
		require.Error(t, notifier.SendSingle(ctx, 777, item))

		err := notifier.SendSingle(ctx, 777, item)

		assert.ErrorIs(t, err, utils.ErrCircuitOpen)
		assert.Equal(t, int64(2), calls.Load())
	})
}
