// models/booking.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ActiveStatuses are the statuses that occupy a time slot. Cancelled and
// completed bookings do not block the slot.
var ActiveStatuses = []BookingStatus{StatusPending, StatusConfirmed}

// PaymentStatus tracks payment independently of the booking lifecycle.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

const DefaultNotes = "No special requests"

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	ClientName  string `gorm:"not null" json:"clientName"`
	ClientEmail string `gorm:"not null" json:"clientEmail"`
	ClientPhone string `gorm:"not null" json:"clientPhone"`

	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	// Snapshot of the service at booking time. The live Service may change
	// afterwards without altering historical bookings.
	ServiceName     string          `gorm:"not null" json:"serviceName"`
	ServicePrice    float64         `gorm:"type:decimal(10,2);not null" json:"servicePrice"`
	ServiceDuration int             `gorm:"not null" json:"serviceDuration"`
	ServiceCategory ServiceCategory `gorm:"type:varchar(20)" json:"serviceCategory"`

	AppointmentDate time.Time `gorm:"type:date;index:idx_slot,priority:1;not null" json:"appointmentDate"`
	AppointmentTime string    `gorm:"type:varchar(5);index:idx_slot,priority:2;not null" json:"appointmentTime"` // "HH:MM", 24-hour

	Notes  string        `gorm:"type:varchar(500);default:'No special requests'" json:"notes"`
	Status BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	TotalAmount   float64       `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'unpaid'" json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// IsActive returns true if the booking occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking may still transition to cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
