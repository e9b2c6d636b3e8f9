package services

import (
	"context"
	"testing"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a Monday and the Sunday before it, fixed so weekday checks are stable
var (
	testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	testSunday = time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
)

func newTestService() *models.Service {
	return &models.Service{
		ID:          uuid.New(),
		Name:        "Haircut",
		Price:       50,
		Duration:    30,
		Category:    models.CategoryHair,
		IsAvailable: true,
	}
}

func TestAvailableSlotsClosedOnSunday(t *testing.T) {
	svc := newTestService()
	store := newFakeBookingStore()
	availability := NewAvailabilityService(store, newFakeCatalog(svc))

	// Even with a booking on the books, Sunday yields nothing
	store.bookings[uuid.New()] = &models.Booking{
		ID:              uuid.New(),
		AppointmentDate: testSunday,
		AppointmentTime: "10:00",
		Status:          models.StatusPending,
	}

	slots, err := availability.AvailableSlots(context.Background(), svc.ID.String(), testSunday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsFullGridOnOpenDay(t *testing.T) {
	svc := newTestService()
	availability := NewAvailabilityService(newFakeBookingStore(), newFakeCatalog(svc))

	slots, err := availability.AvailableSlots(context.Background(), svc.ID.String(), testMonday)
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])

	seen := make(map[string]bool)
	for i, slot := range slots {
		assert.False(t, seen[slot], "duplicate slot %s", slot)
		seen[slot] = true
		if i > 0 {
			assert.Less(t, slots[i-1], slot, "slots must be strictly ascending")
		}
	}
}

func TestAvailableSlotsExcludesActiveBookings(t *testing.T) {
	svc := newTestService()
	store := newFakeBookingStore()
	availability := NewAvailabilityService(store, newFakeCatalog(svc))

	id := uuid.New()
	store.bookings[id] = &models.Booking{
		ID:              id,
		AppointmentDate: testMonday,
		AppointmentTime: "10:00",
		Status:          models.StatusConfirmed,
	}

	slots, err := availability.AvailableSlots(context.Background(), svc.ID.String(), testMonday)
	require.NoError(t, err)
	assert.Len(t, slots, 17)
	assert.NotContains(t, slots, "10:00")
}

func TestAvailableSlotsIgnoresCancelledAndCompleted(t *testing.T) {
	svc := newTestService()
	store := newFakeBookingStore()
	availability := NewAvailabilityService(store, newFakeCatalog(svc))

	for timeOfDay, status := range map[string]models.BookingStatus{
		"10:00": models.StatusCancelled,
		"11:00": models.StatusCompleted,
	} {
		id := uuid.New()
		store.bookings[id] = &models.Booking{
			ID:              id,
			AppointmentDate: testMonday,
			AppointmentTime: timeOfDay,
			Status:          status,
		}
	}

	slots, err := availability.AvailableSlots(context.Background(), svc.ID.String(), testMonday)
	require.NoError(t, err)
	assert.Len(t, slots, 18)
	assert.Contains(t, slots, "10:00")
	assert.Contains(t, slots, "11:00")
}

func TestAvailableSlotsUnknownService(t *testing.T) {
	availability := NewAvailabilityService(newFakeBookingStore(), newFakeCatalog())

	_, err := availability.AvailableSlots(context.Background(), uuid.NewString(), testMonday)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()
	require.Len(t, grid, 18)
	assert.Equal(t, "09:00", grid[0])
	assert.Equal(t, "09:30", grid[1])
	assert.Equal(t, "17:30", grid[17])
}
