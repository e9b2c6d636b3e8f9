// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID    uuid.UUID `gorm:"type:uuid;index;not null" json:"bookingId"`
	Kind         string    `gorm:"type:varchar(30);not null" json:"kind"` // booking_created, booking_reminder, ...
	Channel      string    `gorm:"type:varchar(20)" json:"channel"`       // email, sms, whatsapp
	Recipient    string    `gorm:"not null" json:"recipient"`
	Subject      string    `json:"subject"`
	Body         string    `gorm:"type:text" json:"body"`
	Status       string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"errorMessage"`
	SentAt       time.Time `json:"sentAt"`

	gorm.Model `json:"-"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
