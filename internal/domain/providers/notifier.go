package providers

import (
	"context"
)

// Notifier is the capability to send a short text message to a phone number.
// Implementations wrap an SMS gateway; the core treats delivery as opaque and
// never retries a failed send itself.
type Notifier interface {
	// Send delivers one message to one phone number. A non-nil error means
	// the send did not succeed.
	Send(ctx context.Context, phone, message string) error
}
