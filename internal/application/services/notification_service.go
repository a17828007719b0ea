package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/providers"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/observability"
)

const (
	bookingConfirmationTemplate = "आपकी बुकिंग पुष्टि हो गई है। बुकिंग ID: %d. धन्यवाद - आश्रय"
	providerAlertTemplate       = "नई बुकिंग मिली है। बुकिंग ID: %d. कृपया तैयार रहें।"
	sosAlertTemplate            = "🚨 आपातकाल की स्थिति! %s को तुरंत सहायता की आवश्यकता है। कृपया तत्काल संपर्क करें। - आश्रय"
)

// NotificationService sends SMS alerts for booking and emergency flows.
// Sends are best-effort: a failed SMS is logged and audited but never fails
// the operation that triggered it.
type NotificationService struct {
	notifier    providers.Notifier
	contactRepo repositories.EmergencyContactRepository
	audit       *NotificationLog
}

// NewNotificationService builds the service. audit may be nil, in which case
// send attempts are not persisted.
func NewNotificationService(
	notifier providers.Notifier,
	contactRepo repositories.EmergencyContactRepository,
	audit *NotificationLog,
) *NotificationService {
	return &NotificationService{
		notifier:    notifier,
		contactRepo: contactRepo,
		audit:       audit,
	}
}

// NotifyBookingCreated sends a confirmation to the requester and an alert to
// the provider. It returns true only when every attempted send succeeded, so
// the caller can record whether the booking was fully notified.
func (s *NotificationService) NotifyBookingCreated(
	ctx context.Context,
	booking *entities.Booking,
	requester *entities.User,
	provider *entities.ServiceProvider,
) bool {
	allSent := true

	if requester != nil && requester.Phone != "" {
		message := fmt.Sprintf(bookingConfirmationTemplate, booking.ID)
		if !s.send(ctx, NotificationTypeBookingConfirmation, requester.Phone, message) {
			allSent = false
		}
	}

	if provider != nil && provider.Phone != "" {
		message := fmt.Sprintf(providerAlertTemplate, booking.ID)
		if !s.send(ctx, NotificationTypeProviderAlert, provider.Phone, message) {
			allSent = false
		}
	}

	return allSent
}

// BroadcastSOS alerts every emergency contact of the user in parallel and
// reports how many were reached. One unreachable contact never blocks the
// others.
func (s *NotificationService) BroadcastSOS(ctx context.Context, user *entities.User) (*entities.SOSResult, error) {
	contacts, err := s.contactRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(sosAlertTemplate, user.FullName())

	var wg sync.WaitGroup
	var notified int64
	for _, contact := range contacts {
		wg.Add(1)
		go func(c *entities.EmergencyContact) {
			defer wg.Done()
			if s.send(ctx, NotificationTypeSOSAlert, c.Phone, message) {
				atomic.AddInt64(&notified, 1)
			}
		}(contact)
	}
	wg.Wait()

	result := &entities.SOSResult{
		ContactsNotified: int(notified),
		TotalContacts:    len(contacts),
	}
	observability.GetLogger().Info().
		Str("user_id", user.ID).
		Int("contacts_notified", result.ContactsNotified).
		Int("total_contacts", result.TotalContacts).
		Msg("SOS broadcast completed")
	return result, nil
}

func (s *NotificationService) send(ctx context.Context, notifType NotificationType, phone, message string) bool {
	err := s.notifier.Send(ctx, phone, message)

	if s.audit != nil {
		if auditErr := s.audit.Record(ctx, notifType, phone, message, err); auditErr != nil {
			observability.GetLogger().Warn().
				Err(auditErr).
				Str("notification_type", string(notifType)).
				Msg("Failed to record notification audit entry")
		}
	}

	if err != nil {
		observability.GetLogger().Warn().
			Err(err).
			Str("notification_type", string(notifType)).
			Str("recipient", phone).
			Msg("SMS send failed")
		return false
	}
	return true
}
