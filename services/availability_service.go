// services/availability_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Operating calendar: closed Sundays, open 09:00-18:00 the other six days,
// divided into 30-minute slots.
const (
	OpeningHour = 9
	ClosingHour = 18
	SlotMinutes = 30
)

const ClosedWeekday = time.Sunday

type AvailabilityService struct {
	bookings BookingStore
	catalog  ServiceCatalog
}

func NewAvailabilityService(bookings BookingStore, catalog ServiceCatalog) *AvailabilityService {
	return &AvailabilityService{bookings: bookings, catalog: catalog}
}

// AvailableSlots returns the ordered bookable times for a service on the
// given date: the fixed operating-hours grid minus the times already held by
// active bookings. A slot is binary booked/free per exact time value; service
// duration overlap is not accounted for.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, serviceID string, date time.Time) ([]string, error) {
	if _, err := resolveService(ctx, s.catalog, serviceID); err != nil {
		return nil, err
	}

	if date.Weekday() == ClosedWeekday {
		return []string{}, nil
	}

	booked, err := s.bookings.ActiveTimesOn(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	slots := make([]string, 0, len(SlotGrid()))
	for _, slot := range SlotGrid() {
		if !taken[slot] {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// SlotGrid returns all candidate times of an open day in ascending order.
func SlotGrid() []string {
	grid := make([]string, 0, (ClosingHour-OpeningHour)*60/SlotMinutes)
	for m := OpeningHour * 60; m < ClosingHour*60; m += SlotMinutes {
		grid = append(grid, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return grid
}

func resolveService(ctx context.Context, catalog ServiceCatalog, serviceID string) (*serviceSnapshot, error) {
	id, err := parseUUID(serviceID)
	if err != nil {
		return nil, newValidationError("serviceId", "must be a valid id")
	}
	svc, err := catalog.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	return &serviceSnapshot{
		ID:       svc.ID,
		Name:     svc.Name,
		Price:    svc.Price,
		Duration: svc.Duration,
		Category: svc.Category,
		Bookable: svc.IsAvailable,
	}, nil
}
