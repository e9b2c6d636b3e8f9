// services/templates.go
package services

import (
	"strings"
	"text/template"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
)

// templateData is what every notification template renders against: the full
// booking snapshot plus display helpers.
type templateData struct {
	ID              string
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	ServiceName     string
	ServicePrice    float64
	ServiceDuration int
	Date            string
	Time            string
	Notes           string
	Status          string
	TotalAmount     float64
}

type renderedMessage struct {
	Subject string
	Body    string
}

var notificationTemplates = map[EventKind]struct {
	subject string
	body    string
}{
	EventBookingCreated: {
		subject: "Your appointment at Luxe Salon is booked",
		body: `Hi {{.ClientName}},

Your appointment has been received and is awaiting confirmation.

Service:  {{.ServiceName}} ({{.ServiceDuration}} min)
Date:     {{.Date}} at {{.Time}}
Total:    ${{printf "%.2f" .TotalAmount}}
Notes:    {{.Notes}}

We will confirm your booking shortly. Reference: {{.ID}}

Luxe Salon`,
	},
	EventBookingReminder: {
		subject: "Reminder: your appointment at Luxe Salon is tomorrow",
		body: `Hi {{.ClientName}},

This is a reminder of your upcoming appointment.

Service:  {{.ServiceName}} ({{.ServiceDuration}} min)
Date:     {{.Date}} at {{.Time}}

See you soon!

Luxe Salon`,
	},
	EventBookingCancelled: {
		subject: "Your appointment at Luxe Salon has been cancelled",
		body: `Hi {{.ClientName}},

Your appointment for {{.ServiceName}} on {{.Date}} at {{.Time}} has been
cancelled. If this was a mistake, please book a new slot on our website.

Luxe Salon`,
	},
	EventAdminNewBooking: {
		subject: "New booking received",
		body: `A new booking has been placed.

Client:   {{.ClientName}} <{{.ClientEmail}}> {{.ClientPhone}}
Service:  {{.ServiceName}} ({{.ServiceDuration}} min)
Date:     {{.Date}} at {{.Time}}
Total:    ${{printf "%.2f" .TotalAmount}}
Status:   {{.Status}}
Notes:    {{.Notes}}
Booking:  {{.ID}}`,
	},
}

var parsedTemplates = func() map[EventKind]*template.Template {
	out := make(map[EventKind]*template.Template, len(notificationTemplates))
	for kind, t := range notificationTemplates {
		out[kind] = template.Must(template.New(string(kind)).Parse(t.body))
	}
	return out
}()

func renderNotification(kind EventKind, b *models.Booking) (renderedMessage, error) {
	tmpl, ok := parsedTemplates[kind]
	if !ok {
		return renderedMessage{}, newValidationError("kind", "unknown notification kind")
	}

	data := templateData{
		ID:              b.ID.String(),
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ClientPhone:     b.ClientPhone,
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		ServiceDuration: b.ServiceDuration,
		Date:            b.AppointmentDate.Format("Monday, 2 January 2006"),
		Time:            b.AppointmentTime,
		Notes:           b.Notes,
		Status:          string(b.Status),
		TotalAmount:     b.TotalAmount,
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return renderedMessage{}, err
	}
	return renderedMessage{Subject: notificationTemplates[kind].subject, Body: sb.String()}, nil
}

// smsBody is the short-form body used for the SMS/WhatsApp channel.
func smsBody(kind EventKind, b *models.Booking) string {
	date := b.AppointmentDate.Format("02 Jan")
	switch kind {
	case EventBookingCreated:
		return "Luxe Salon: your " + b.ServiceName + " appointment on " + date + " at " + b.AppointmentTime + " is received and pending confirmation."
	case EventBookingReminder:
		return "Luxe Salon: reminder for your " + b.ServiceName + " appointment tomorrow at " + b.AppointmentTime + "."
	case EventBookingCancelled:
		return "Luxe Salon: your " + b.ServiceName + " appointment on " + date + " at " + b.AppointmentTime + " has been cancelled."
	}
	return ""
}
