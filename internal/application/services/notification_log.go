package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// NotificationType classifies an outbound SMS for the audit trail.
type NotificationType string

const (
	NotificationTypeBookingConfirmation NotificationType = "booking_confirmation"
	NotificationTypeProviderAlert       NotificationType = "provider_alert"
	NotificationTypeSOSAlert            NotificationType = "sos_alert"
)

// NotificationRecord is one row in the notification audit trail.
type NotificationRecord struct {
	ID               string           `db:"id"`
	NotificationType NotificationType `db:"notification_type"`
	Recipient        string           `db:"recipient"`
	Message          string           `db:"message"`
	Status           string           `db:"status"`
	ErrorMessage     *string          `db:"error_message"`
	CreatedAt        time.Time        `db:"created_at"`
}

// NotificationLog persists a record of every SMS send attempt, successful or
// not. The log is append-only and never consulted on the request path.
type NotificationLog struct {
	db *sqlx.DB
}

func NewNotificationLog(db *sqlx.DB) *NotificationLog {
	return &NotificationLog{db: db}
}

// Record writes one audit row for a send attempt. sendErr nil means the
// gateway accepted the message.
func (l *NotificationLog) Record(ctx context.Context, notifType NotificationType, recipient, message string, sendErr error) error {
	rec := NotificationRecord{
		ID:               uuid.New().String(),
		NotificationType: notifType,
		Recipient:        recipient,
		Message:          message,
		Status:           "sent",
		CreatedAt:        time.Now().UTC(),
	}
	if sendErr != nil {
		rec.Status = "failed"
		msg := sendErr.Error()
		rec.ErrorMessage = &msg
	}

	_, err := l.db.NamedExecContext(ctx, `
		INSERT INTO notification_log (id, notification_type, recipient, message, status, error_message, created_at)
		VALUES (:id, :notification_type, :recipient, :message, :status, :error_message, :created_at)`,
		rec)
	return err
}
