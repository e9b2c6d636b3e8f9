// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// serviceSnapshot is the immutable value copy of a Service taken at booking
// time. Later edits to the live Service never alter it.
type serviceSnapshot struct {
	ID       uuid.UUID
	Name     string
	Price    float64
	Duration int
	Category models.ServiceCategory
	Bookable bool
}

// allowedTransitions is the booking status graph. Completed and cancelled
// are terminal.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
}

type CreateBookingInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	ServiceID   string
	Date        string // "YYYY-MM-DD"
	Time        string // "HH:MM", 24-hour
	Notes       string
}

type BookingService struct {
	bookings BookingStore
	catalog  ServiceCatalog
	notifier Notifier
	clock    Clock
}

func NewBookingService(bookings BookingStore, catalog ServiceCatalog, notifier Notifier, clock Clock) *BookingService {
	if clock == nil {
		clock = SystemClock()
	}
	return &BookingService{bookings: bookings, catalog: catalog, notifier: notifier, clock: clock}
}

// Create validates the request, rejects occupied slots, persists a pending
// booking with a snapshot of the service, and emits creation notifications.
// Notification failures are logged, never propagated: a booking must not fail
// because delivery is down.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	date, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}

	svc, err := resolveService(ctx, s.catalog, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Bookable {
		return nil, ErrServiceUnavailable
	}

	taken, err := s.bookings.SlotTaken(ctx, date, in.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = models.DefaultNotes
	}

	booking := &models.Booking{
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		ClientPhone: strings.TrimSpace(in.ClientPhone),

		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ServicePrice:    svc.Price,
		ServiceDuration: svc.Duration,
		ServiceCategory: svc.Category,

		AppointmentDate: date,
		AppointmentTime: in.Time,

		Notes:         notes,
		Status:        models.StatusPending,
		TotalAmount:   svc.Price,
		PaymentStatus: models.PaymentUnpaid,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		// The partial unique index on (date, time) closes the window between
		// the check above and this insert under concurrent requests.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.notifyBestEffort(ctx, EventBookingCreated, booking)
	s.notifyBestEffort(ctx, EventAdminNewBooking, booking)

	return booking, nil
}

// Get returns the booking with the given id.
func (s *BookingService) Get(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.load(ctx, bookingID)
}

// UpdateStatus moves a booking along the status graph. Unknown statuses fail
// with ErrInvalidStatus, moves the graph forbids with ErrInvalidTransition.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus) (*models.Booking, error) {
	if !models.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(booking.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	booking.Status = newStatus
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// Cancel sets a booking to cancelled. Already-cancelled and completed
// bookings cannot be cancelled.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		if booking.Status == models.StatusCancelled {
			return nil, fmt.Errorf("%w: booking is already cancelled", ErrInvalidTransition)
		}
		return nil, fmt.Errorf("%w: %s bookings cannot be cancelled", ErrInvalidTransition, booking.Status)
	}

	booking.Status = models.StatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// List returns bookings matching the filter, ordered by appointment date
// then time, paginated. The second return value is the total match count.
func (s *BookingService) List(ctx context.Context, f BookingFilter) ([]models.Booking, int64, error) {
	if f.Status != nil && !models.ValidStatus(*f.Status) {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidStatus, *f.Status)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.bookings.List(ctx, f)
}

// NotifyCancelled emits the cancellation event for a booking. Callers decide
// when a cancellation warrants delivery; failures are absorbed here too.
func (s *BookingService) NotifyCancelled(ctx context.Context, booking *models.Booking) {
	s.notifyBestEffort(ctx, EventBookingCancelled, booking)
}

func (s *BookingService) load(ctx context.Context, bookingID string) (*models.Booking, error) {
	id, err := parseUUID(bookingID)
	if err != nil {
		return nil, newValidationError("bookingId", "must be a valid id")
	}
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) validateInput(in CreateBookingInput) (time.Time, error) {
	name := strings.TrimSpace(in.ClientName)
	if len(name) < 2 || len(name) > 100 {
		return time.Time{}, newValidationError("clientName", "must be between 2 and 100 characters")
	}
	if !utils.ValidateEmail(strings.TrimSpace(in.ClientEmail)) {
		return time.Time{}, newValidationError("clientEmail", "must be a well-formed email address")
	}
	if !utils.ValidatePhone(strings.TrimSpace(in.ClientPhone)) {
		return time.Time{}, newValidationError("clientPhone", "must be a valid phone number")
	}
	if !utils.ValidateTimeOfDay(in.Time) {
		return time.Time{}, newValidationError("appointmentTime", "must match HH:MM on a 24-hour clock")
	}
	if len(in.Notes) > 500 {
		return time.Time{}, newValidationError("notes", "must be at most 500 characters")
	}

	date, err := time.ParseInLocation(utils.DateLayout, in.Date, time.Local)
	if err != nil {
		return time.Time{}, newValidationError("appointmentDate", "must be a date in YYYY-MM-DD format")
	}
	today := utils.BeginningOfDay(s.clock.Now())
	if !date.After(today) {
		return time.Time{}, newValidationError("appointmentDate", "must be strictly in the future")
	}
	return date, nil
}

func (s *BookingService) notifyBestEffort(ctx context.Context, kind EventKind, booking *models.Booking) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, kind, booking); err != nil {
		log.Printf("[NOTIFY] %s for booking %s failed: %v", kind, booking.ID, err)
	}
}

func transitionAllowed(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}
