// services/reminder_service.go
package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// ReminderService sends a reminder for every active booking scheduled for
// tomorrow. It runs daily from a cron schedule.
type ReminderService struct {
	bookings BookingStore
	notifier Notifier
	clock    Clock
}

func NewReminderService(bookings BookingStore, notifier Notifier, clock Clock) *ReminderService {
	if clock == nil {
		clock = SystemClock()
	}
	return &ReminderService{bookings: bookings, notifier: notifier, clock: clock}
}

// StartScheduler registers the daily 9 AM sweep and starts the cron runner.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders(context.Background())
	})

	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// SendDailyReminders emits a BookingReminder for every active booking whose
// appointment date is tomorrow. Delivery failures are logged per booking and
// never abort the sweep.
func (s *ReminderService) SendDailyReminders(ctx context.Context) {
	log.Println("Starting daily reminder processing...")

	tomorrow := s.clock.Now().AddDate(0, 0, 1)
	bookings, err := s.bookings.ActiveOn(ctx, tomorrow)
	if err != nil {
		log.Printf("Failed to fetch bookings for reminders: %v", err)
		return
	}

	sent := 0
	for i := range bookings {
		booking := &bookings[i]
		if err := s.notifier.Notify(ctx, EventBookingReminder, booking); err != nil {
			log.Printf("Reminder for booking %s failed: %v", booking.ID, err)
			continue
		}
		sent++
	}

	log.Printf("Daily reminder processing completed: %d/%d sent", sent, len(bookings))
}
