package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailSender struct {
	sent []sentEmail
	err  error
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

func (f *fakeEmailSender) Send(to, subject, body string) error {
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, body: body})
	return f.err
}

type fakeTextSender struct {
	sent []string
	err  error
}

func (f *fakeTextSender) Send(to, body string) (string, error) {
	f.sent = append(f.sent, to)
	return "sms", f.err
}

type fakeLogStore struct {
	entries []models.NotificationLog
}

func (f *fakeLogStore) Insert(ctx context.Context, entry *models.NotificationLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func testBooking() *models.Booking {
	return &models.Booking{
		ID:              uuid.New(),
		ClientName:      "Jordan Patel",
		ClientEmail:     "jordan@example.com",
		ClientPhone:     "+14155550123",
		ServiceName:     "Haircut",
		ServicePrice:    50,
		ServiceDuration: 30,
		AppointmentDate: time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local),
		AppointmentTime: "10:00",
		Notes:           models.DefaultNotes,
		Status:          models.StatusPending,
		TotalAmount:     50,
	}
}

func TestNotifyBookingCreated(t *testing.T) {
	email := &fakeEmailSender{}
	text := &fakeTextSender{}
	logs := &fakeLogStore{}
	n := NewNotificationService(email, text, logs, "owner@luxesalon.in", fixedClock{now: testNow})

	err := n.Notify(context.Background(), EventBookingCreated, testBooking())
	require.NoError(t, err)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "jordan@example.com", email.sent[0].to)
	assert.Contains(t, email.sent[0].body, "Haircut")
	assert.Contains(t, email.sent[0].body, "10:00")
	assert.Contains(t, email.sent[0].body, "$50.00")

	require.Len(t, text.sent, 1)
	assert.Equal(t, "+14155550123", text.sent[0])

	// One log row per channel attempt
	require.Len(t, logs.entries, 2)
	for _, entry := range logs.entries {
		assert.Equal(t, "sent", entry.Status)
		assert.Equal(t, string(EventBookingCreated), entry.Kind)
	}
}

func TestNotifyAdminEventGoesToAdminAddress(t *testing.T) {
	email := &fakeEmailSender{}
	text := &fakeTextSender{}
	n := NewNotificationService(email, text, nil, "owner@luxesalon.in", fixedClock{now: testNow})

	err := n.Notify(context.Background(), EventAdminNewBooking, testBooking())
	require.NoError(t, err)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "owner@luxesalon.in", email.sent[0].to)
	assert.Empty(t, text.sent, "admin events are email-only")
}

func TestNotifyRecordsFailures(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("relay down")}
	logs := &fakeLogStore{}
	n := NewNotificationService(email, nil, logs, "", fixedClock{now: testNow})

	err := n.Notify(context.Background(), EventBookingReminder, testBooking())
	assert.Error(t, err)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "failed", logs.entries[0].Status)
	assert.Contains(t, logs.entries[0].ErrorMessage, "relay down")
}

func TestRenderNotificationAllKinds(t *testing.T) {
	b := testBooking()
	for _, kind := range []EventKind{EventBookingCreated, EventBookingReminder, EventBookingCancelled, EventAdminNewBooking} {
		msg, err := renderNotification(kind, b)
		require.NoError(t, err, "kind %s", kind)
		assert.NotEmpty(t, msg.Subject)
		assert.Contains(t, msg.Body, "Haircut")
	}
}
