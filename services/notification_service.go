// services/notification_service.go
package services

import (
	"context"
	"errors"
	"log"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
)

// EmailSender delivers a rendered message to a single recipient.
type EmailSender interface {
	Send(to, subject, body string) error
}

// TextSender delivers a short message to a phone number and reports which
// channel (sms or whatsapp) carried it.
type TextSender interface {
	Send(to, body string) (channel string, err error)
}

// NotificationLogStore persists one row per delivery attempt.
type NotificationLogStore interface {
	Insert(ctx context.Context, entry *models.NotificationLog) error
}

// NotificationService renders templated messages per event kind and fans them
// out over the configured channels, recording every attempt.
type NotificationService struct {
	email      EmailSender
	text       TextSender
	logs       NotificationLogStore
	adminEmail string
	clock      Clock
}

func NewNotificationService(email EmailSender, text TextSender, logs NotificationLogStore, adminEmail string, clock Clock) *NotificationService {
	if clock == nil {
		clock = SystemClock()
	}
	return &NotificationService{email: email, text: text, logs: logs, adminEmail: adminEmail, clock: clock}
}

// Notify implements Notifier. Admin events go to the configured admin
// address; client events go to the booking's contact email and, when a text
// channel is configured, the contact phone. The returned error aggregates
// channel failures; callers in the booking path absorb it.
func (n *NotificationService) Notify(ctx context.Context, kind EventKind, b *models.Booking) error {
	msg, err := renderNotification(kind, b)
	if err != nil {
		return err
	}

	var errs []error

	to := b.ClientEmail
	if kind == EventAdminNewBooking {
		to = n.adminEmail
	}

	if n.email != nil && to != "" {
		err := n.email.Send(to, msg.Subject, msg.Body)
		n.record(ctx, b, kind, "email", to, msg.Subject, msg.Body, err)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if n.text != nil && kind != EventAdminNewBooking {
		if body := smsBody(kind, b); body != "" {
			channel, err := n.text.Send(b.ClientPhone, body)
			n.record(ctx, b, kind, channel, b.ClientPhone, "", body, err)
			if err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func (n *NotificationService) record(ctx context.Context, b *models.Booking, kind EventKind, channel, recipient, subject, body string, sendErr error) {
	if n.logs == nil {
		return
	}

	entry := &models.NotificationLog{
		BookingID: b.ID,
		Kind:      string(kind),
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Status:    "sent",
		SentAt:    n.clock.Now(),
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.ErrorMessage = sendErr.Error()
	}

	if err := n.logs.Insert(ctx, entry); err != nil {
		log.Printf("Failed to log %s notification for booking %s: %v", kind, b.ID, err)
	}
}

var _ Notifier = (*NotificationService)(nil)
