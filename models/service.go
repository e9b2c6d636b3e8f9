package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceCategory is the fixed set of catalog categories.
type ServiceCategory string

const (
	CategoryHair     ServiceCategory = "hair"
	CategoryNails    ServiceCategory = "nails"
	CategorySkincare ServiceCategory = "skincare"
	CategorySpa      ServiceCategory = "spa"
	CategoryMakeup   ServiceCategory = "makeup"
	CategoryOther    ServiceCategory = "other"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c ServiceCategory) bool {
	switch c {
	case CategoryHair, CategoryNails, CategorySkincare, CategorySpa, CategoryMakeup, CategoryOther:
		return true
	}
	return false
}

type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"uniqueIndex;not null" json:"name"`
	Description string          `json:"description"`
	Price       float64         `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int             `gorm:"not null" json:"duration"` // in minutes
	Category    ServiceCategory `gorm:"type:varchar(20);default:'other'" json:"category"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`
	IsPopular   bool            `gorm:"default:false" json:"isPopular"`

	gorm.Model `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
