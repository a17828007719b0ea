package notifications_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashray-care/aashray-backend/internal/adapters/notifications"
	"github.com/aashray-care/aashray-backend/pkg/config"
)

func TestSMSGatewayNotifier_Send(t *testing.T) {
	t.Run("posts the message with credentials", func(t *testing.T) {
		var captured struct {
			To       string `json:"to"`
			Message  string `json:"message"`
			SenderID string `json:"sender_id"`
		}
		var authHeader string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"message_id": "msg-1", "status": "queued"})
		}))
		defer server.Close()

		notifier, err := notifications.NewSMSGatewayNotifier(&config.SMSConfig{
			GatewayURL: server.URL,
			APIKey:     "secret-key",
			SenderID:   "AASHRAY",
		})
		require.NoError(t, err)

		err = notifier.Send(context.Background(), "+919800000001", "booking confirmed")

		assert.NoError(t, err)
		assert.Equal(t, "Bearer secret-key", authHeader)
		assert.Equal(t, "+919800000001", captured.To)
		assert.Equal(t, "booking confirmed", captured.Message)
		assert.Equal(t, "AASHRAY", captured.SenderID)
	})

	t.Run("surfaces the gateway error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid destination number"})
		}))
		defer server.Close()

		notifier, err := notifications.NewSMSGatewayNotifier(&config.SMSConfig{
			GatewayURL: server.URL,
			APIKey:     "secret-key",
		})
		require.NoError(t, err)

		err = notifier.Send(context.Background(), "not-a-number", "hello")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid destination number")
	})

	t.Run("fails on a non-JSON gateway failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		notifier, err := notifications.NewSMSGatewayNotifier(&config.SMSConfig{
			GatewayURL: server.URL,
			APIKey:     "secret-key",
		})
		require.NoError(t, err)

		err = notifier.Send(context.Background(), "+919800000001", "hello")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("requires gateway credentials", func(t *testing.T) {
		_, err := notifications.NewSMSGatewayNotifier(&config.SMSConfig{})

		assert.Error(t, err)
	})
}
