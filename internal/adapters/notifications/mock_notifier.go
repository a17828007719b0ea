package notifications

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/aashray-care/aashray-backend/internal/domain/providers"
)

// MockNotifier logs messages instead of sending them. Used in development
// when no SMS gateway is configured.
type MockNotifier struct{}

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() providers.Notifier {
	return &MockNotifier{}
}

// Send logs the message and reports success
func (n *MockNotifier) Send(ctx context.Context, phone, message string) error {
	log.Info().
		Str("phone", phone).
		Str("message", message).
		Msg("mock SMS send")
	return nil
}
