package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

// One loyalty point per this many dollars of service price.
var loyaltyPointStep = decimal.NewFromInt(10)

type BookingService interface {
	BookedSlots(ctx context.Context, staffID uint, date string) ([]string, error)
	Create(ctx context.Context, user *model.User, req *dto.CreateBookingRequest) (*model.Booking, error)
	ListMine(ctx context.Context, userID uint) ([]*model.Booking, error)
	Cancel(ctx context.Context, userID, bookingID uint) (*model.Booking, error)
	Feedback(ctx context.Context, userID, bookingID uint, req *dto.BookingFeedbackRequest) (*model.Booking, error)
}

type bookingServiceImpl struct {
	bookingRepo repository.BookingRepository
	serviceRepo repository.ServiceRepository
	staffRepo   repository.StaffRepository
	userRepo    repository.UserRepository
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
	userRepo repository.UserRepository,
) BookingService {
	return &bookingServiceImpl{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		userRepo:    userRepo,
	}
}

func (s *bookingServiceImpl) BookedSlots(ctx context.Context, staffID uint, date string) ([]string, error) {
	return s.bookingRepo.BookedTimes(ctx, staffID, date)
}

func (s *bookingServiceImpl) Create(ctx context.Context, user *model.User, req *dto.CreateBookingRequest) (*model.Booking, error) {
	svc, err := s.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid serviceId: %w", ErrInvalidReference)
		}
		return nil, fmt.Errorf("load service: %w", err)
	}

	if req.StaffID != nil {
		if _, err := s.staffRepo.FindByID(ctx, *req.StaffID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("invalid staffId: %w", ErrInvalidReference)
			}
			return nil, fmt.Errorf("load staff: %w", err)
		}
	}

	booking := &model.Booking{
		UserID:    user.ID,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    model.BookingStatusScheduled,
		Notes:     req.Notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Loyalty points are best-effort; a failed update never fails the
	// booking.
	points := int(svc.Price.Div(loyaltyPointStep).IntPart())
	if points > 0 {
		_ = s.userRepo.AddLoyaltyPoints(ctx, user.ID, points)
	}

	return booking, nil
}

func (s *bookingServiceImpl) ListMine(ctx context.Context, userID uint) ([]*model.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingServiceImpl) Cancel(ctx context.Context, userID, bookingID uint) (*model.Booking, error) {
	return s.bookingRepo.CancelForUser(ctx, bookingID, userID)
}

func (s *bookingServiceImpl) Feedback(ctx context.Context, userID, bookingID uint, req *dto.BookingFeedbackRequest) (*model.Booking, error) {
	return s.bookingRepo.SetFeedbackForUser(ctx, bookingID, userID, req.Rating, req.Feedback)
}
