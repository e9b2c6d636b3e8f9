// services/contracts.go
package services

import (
	"context"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"

	"github.com/google/uuid"
)

// BookingFilter narrows booking listings. Nil fields match everything.
type BookingFilter struct {
	Status *models.BookingStatus
	Date   *time.Time // exact calendar date
	Page   int
	Limit  int
}

// BookingStore is the persistence collaborator for bookings. Absent records
// are reported as gorm.ErrRecordNotFound; an insert that loses the slot race
// to a concurrent writer is reported as gorm.ErrDuplicatedKey.
type BookingStore interface {
	Insert(ctx context.Context, b *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	List(ctx context.Context, f BookingFilter) ([]models.Booking, int64, error)
	// SlotTaken reports whether an active booking already occupies the
	// (date, time) pair.
	SlotTaken(ctx context.Context, date time.Time, timeOfDay string) (bool, error)
	// ActiveTimesOn returns the appointment times of all active bookings on
	// the given calendar date.
	ActiveTimesOn(ctx context.Context, date time.Time) ([]string, error)
	// ActiveOn returns all active bookings on the given calendar date.
	ActiveOn(ctx context.Context, date time.Time) ([]models.Booking, error)
}

// ServiceCatalog resolves services by id. Absent services are reported as
// gorm.ErrRecordNotFound.
type ServiceCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
}

// EventKind identifies a lifecycle notification event.
type EventKind string

const (
	EventBookingCreated   EventKind = "booking_created"
	EventBookingReminder  EventKind = "booking_reminder"
	EventBookingCancelled EventKind = "booking_cancelled"
	EventAdminNewBooking  EventKind = "admin_new_booking"
)

// Notifier delivers a lifecycle event carrying the full booking snapshot.
// Failures are non-fatal to callers in the booking path.
type Notifier interface {
	Notify(ctx context.Context, kind EventKind, b *models.Booking) error
}

// Clock supplies the current time so date validation and slot generation
// stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
