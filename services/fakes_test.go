package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeBookingStore is an in-memory BookingStore. Insert enforces the same
// active-slot uniqueness the partial index provides in Postgres.
type fakeBookingStore struct {
	bookings  map[uuid.UUID]*models.Booking
	insertErr error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uuid.UUID]*models.Booking)}
}

func (f *fakeBookingStore) Insert(ctx context.Context, b *models.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.bookings {
		if existing.IsActive() &&
			sameDay(existing.AppointmentDate, b.AppointmentDate) &&
			existing.AppointmentTime == b.AppointmentTime {
			return gorm.ErrDuplicatedKey
		}
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingStore) Update(ctx context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingStore) List(ctx context.Context, filter BookingFilter) ([]models.Booking, int64, error) {
	var matched []models.Booking
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Date != nil && !sameDay(b.AppointmentDate, *filter.Date) {
			continue
		}
		matched = append(matched, *b)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].AppointmentDate.Equal(matched[j].AppointmentDate) {
			return matched[i].AppointmentDate.Before(matched[j].AppointmentDate)
		}
		return matched[i].AppointmentTime < matched[j].AppointmentTime
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []models.Booking{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeBookingStore) SlotTaken(ctx context.Context, date time.Time, timeOfDay string) (bool, error) {
	for _, b := range f.bookings {
		if b.IsActive() && sameDay(b.AppointmentDate, date) && b.AppointmentTime == timeOfDay {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingStore) ActiveTimesOn(ctx context.Context, date time.Time) ([]string, error) {
	var times []string
	for _, b := range f.bookings {
		if b.IsActive() && sameDay(b.AppointmentDate, date) {
			times = append(times, b.AppointmentTime)
		}
	}
	return times, nil
}

func (f *fakeBookingStore) ActiveOn(ctx context.Context, date time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.IsActive() && sameDay(b.AppointmentDate, date) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppointmentTime < out[j].AppointmentTime })
	return out, nil
}

func sameDay(a, b time.Time) bool {
	return utils.BeginningOfDay(a).Equal(utils.BeginningOfDay(b))
}

// fakeCatalog resolves services from a fixed map.
type fakeCatalog struct {
	services map[uuid.UUID]*models.Service
}

func newFakeCatalog(svcs ...*models.Service) *fakeCatalog {
	c := &fakeCatalog{services: make(map[uuid.UUID]*models.Service)}
	for _, s := range svcs {
		c.services[s.ID] = s
	}
	return c
}

func (f *fakeCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

// fakeNotifier records emitted events and can be forced to fail.
type fakeNotifier struct {
	events []EventKind
	err    error
}

func (f *fakeNotifier) Notify(ctx context.Context, kind EventKind, b *models.Booking) error {
	f.events = append(f.events, kind)
	return f.err
}

// fixedClock pins Now for deterministic date validation.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.ParseInLocation(utils.DateLayout, s, time.Local)
	require.NoError(t, err)
	return date
}
