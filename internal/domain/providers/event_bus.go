package providers

import (
	"context"
	"strconv"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to booking
// lifecycle events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.BookingEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.BookingEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelBookings is the channel for all booking lifecycle events
	EventChannelBookings = "bookings:events"

	// EventChannelProviderPrefix is the prefix for provider-specific channels
	EventChannelProviderPrefix = "provider:"
)

// GetProviderChannel returns the channel name for a specific provider
func GetProviderChannel(providerID int64) string {
	return EventChannelProviderPrefix + strconv.FormatInt(providerID, 10)
}
