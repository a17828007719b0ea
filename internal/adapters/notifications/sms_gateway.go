package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aashray-care/aashray-backend/internal/domain/providers"
	"github.com/aashray-care/aashray-backend/pkg/config"
)

// SMSGatewayNotifier sends text messages through an HTTP SMS gateway. The
// gateway itself is a black box: one POST per message, 2xx means accepted.
// Failed sends are never retried here; callers decide what a failure means.
type SMSGatewayNotifier struct {
	gatewayURL string
	apiKey     string
	senderID   string
	httpClient *http.Client
}

// NewSMSGatewayNotifier creates a new SMS gateway notifier
func NewSMSGatewayNotifier(cfg *config.SMSConfig) (providers.Notifier, error) {
	if cfg.GatewayURL == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("SMS_GATEWAY_URL and SMS_API_KEY must be set")
	}

	return &SMSGatewayNotifier{
		gatewayURL: cfg.GatewayURL,
		apiKey:     cfg.APIKey,
		senderID:   cfg.SenderID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type smsRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id"`
}

type smsResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Send delivers one message to one phone number
func (n *SMSGatewayNotifier) Send(ctx context.Context, phone, message string) error {
	payload, err := json.Marshal(smsRequest{
		To:       phone,
		Message:  message,
		SenderID: n.senderID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal SMS request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call SMS gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read SMS gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gatewayResp smsResponse
		if err := json.Unmarshal(body, &gatewayResp); err == nil && gatewayResp.Error != "" {
			return fmt.Errorf("SMS gateway rejected message (status %d): %s", resp.StatusCode, gatewayResp.Error)
		}
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}

	return nil
}
