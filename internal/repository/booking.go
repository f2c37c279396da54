package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/model"
)

type BookingRepository interface {
	BookedTimes(ctx context.Context, staffID uint, date string) ([]string, error)
	Create(ctx context.Context, booking *model.Booking) error
	ListByUser(ctx context.Context, userID uint) ([]*model.Booking, error)
	CancelForUser(ctx context.Context, bookingID, userID uint) (*model.Booking, error)
	SetFeedbackForUser(ctx context.Context, bookingID, userID uint, rating *int, feedback string) (*model.Booking, error)
}

type bookingRepoImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepoImpl{db: db}
}

func (r *bookingRepoImpl) BookedTimes(ctx context.Context, staffID uint, date string) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("staff_id = ? AND date = ? AND status <> ?", staffID, date, model.BookingStatusCancelled).
		Pluck("time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *bookingRepoImpl) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepoImpl) ListByUser(ctx context.Context, userID uint) ([]*model.Booking, error) {
	var bookings []*model.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoImpl) CancelForUser(ctx context.Context, bookingID, userID uint) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Booking{}).
			Where("id = ? AND user_id = ?", bookingID, userID).
			Update("status", model.BookingStatusCancelled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&booking, bookingID).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoImpl) SetFeedbackForUser(ctx context.Context, bookingID, userID uint, rating *int, feedback string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Booking{}).
			Where("id = ? AND user_id = ?", bookingID, userID).
			Updates(map[string]interface{}{
				"rating":   rating,
				"feedback": feedback,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&booking, bookingID).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
