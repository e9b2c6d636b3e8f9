// repository/booking_repository.go
package repository

import (
	"context"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/services"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Insert(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingRepository) List(ctx context.Context, f services.BookingFilter) ([]models.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Booking{})
	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}
	if f.Date != nil {
		query = query.Where("appointment_date = ?", utils.BeginningOfDay(*f.Date))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := query.
		Order("appointment_date ASC, appointment_time ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *BookingRepository) SlotTaken(ctx context.Context, date time.Time, timeOfDay string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("appointment_date = ? AND appointment_time = ? AND status IN ?",
			utils.BeginningOfDay(date), timeOfDay, models.ActiveStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingRepository) ActiveTimesOn(ctx context.Context, date time.Time) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("appointment_date = ? AND status IN ?", utils.BeginningOfDay(date), models.ActiveStatuses).
		Pluck("appointment_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *BookingRepository) ActiveOn(ctx context.Context, date time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("appointment_date = ? AND status IN ?", utils.BeginningOfDay(date), models.ActiveStatuses).
		Order("appointment_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ services.BookingStore = (*BookingRepository)(nil)
