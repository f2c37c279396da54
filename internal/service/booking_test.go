package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

func newBookingService(t *testing.T, db *gorm.DB) BookingService {
	t.Helper()
	return NewBookingService(
		repository.NewBookingRepository(db),
		repository.NewServiceRepository(db),
		repository.NewStaffRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedService(t *testing.T, db *gorm.DB, name, price string) *model.Service {
	t.Helper()
	svc := &model.Service{
		Name:     name,
		Category: "facial",
		Duration: 60,
		Price:    mustDecimal(t, price),
	}
	if err := db.Create(svc).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return svc
}

func seedStaff(t *testing.T, db *gorm.DB, name string) *model.Staff {
	t.Helper()
	staff := &model.Staff{Name: name, Role: "esthetician"}
	if err := db.Create(staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return staff
}

func TestCreateBookingAwardsLoyaltyPoints(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	svc := seedService(t, db, "Hydrating Facial", "85.00")
	user := seedUser(t, db, "ana@example.com")

	booking, err := bookings.Create(context.Background(), user, &dto.CreateBookingRequest{
		ServiceID: svc.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
		Notes:     "sensitive skin",
	})
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusScheduled, booking.Status)

	var got model.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.Equal(t, 8, got.LoyaltyPoints, "one point per ten dollars, floored")
}

func TestCreateBookingRejectsUnknownService(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	user := seedUser(t, db, "ana@example.com")

	_, err := bookings.Create(context.Background(), user, &dto.CreateBookingRequest{
		ServiceID: 999,
		Date:      "2026-09-01",
		Time:      "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCreateBookingRejectsUnknownStaff(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	svc := seedService(t, db, "Hydrating Facial", "85.00")
	user := seedUser(t, db, "ana@example.com")

	missing := uint(999)
	_, err := bookings.Create(context.Background(), user, &dto.CreateBookingRequest{
		ServiceID: svc.ID,
		StaffID:   &missing,
		Date:      "2026-09-01",
		Time:      "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCreateBookingRejectsTakenSlot(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	svc := seedService(t, db, "Hydrating Facial", "85.00")
	staff := seedStaff(t, db, "Marie")
	first := seedUser(t, db, "ana@example.com")
	second := seedUser(t, db, "bea@example.com")

	req := &dto.CreateBookingRequest{
		ServiceID: svc.ID,
		StaffID:   &staff.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
	}
	_, err := bookings.Create(context.Background(), first, req)
	require.NoError(t, err)

	_, err = bookings.Create(context.Background(), second, req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestRebookingCancelledSlotSucceeds(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	svc := seedService(t, db, "Hydrating Facial", "85.00")
	staff := seedStaff(t, db, "Marie")
	first := seedUser(t, db, "ana@example.com")
	second := seedUser(t, db, "bea@example.com")

	req := &dto.CreateBookingRequest{
		ServiceID: svc.ID,
		StaffID:   &staff.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
	}
	booking, err := bookings.Create(context.Background(), first, req)
	require.NoError(t, err)
	_, err = bookings.Cancel(context.Background(), first.ID, booking.ID)
	require.NoError(t, err)

	// Cancellation frees the slot; the cancelled row no longer holds the
	// unique index entry.
	rebooked, err := bookings.Create(context.Background(), second, req)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusScheduled, rebooked.Status)

	slots, err := bookings.BookedSlots(context.Background(), staff.ID, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, slots)
}

func TestBookedSlotsExcludeCancelled(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	svc := seedService(t, db, "Hydrating Facial", "85.00")
	staff := seedStaff(t, db, "Marie")
	user := seedUser(t, db, "ana@example.com")

	kept, err := bookings.Create(context.Background(), user, &dto.CreateBookingRequest{
		ServiceID: svc.ID, StaffID: &staff.ID, Date: "2026-09-01", Time: "10:00",
	})
	require.NoError(t, err)
	_ = kept

	cancelled, err := bookings.Create(context.Background(), user, &dto.CreateBookingRequest{
		ServiceID: svc.ID, StaffID: &staff.ID, Date: "2026-09-01", Time: "11:00",
	})
	require.NoError(t, err)
	_, err = bookings.Cancel(context.Background(), user.ID, cancelled.ID)
	require.NoError(t, err)

	slots, err := bookings.BookedSlots(context.Background(), staff.ID, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, slots)
}

func TestCancelRejectsAnotherUsersBooking(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	svc := seedService(t, db, "Hydrating Facial", "85.00")
	owner := seedUser(t, db, "ana@example.com")
	intruder := seedUser(t, db, "eve@example.com")

	booking, err := bookings.Create(context.Background(), owner, &dto.CreateBookingRequest{
		ServiceID: svc.ID, Date: "2026-09-01", Time: "10:00",
	})
	require.NoError(t, err)

	_, err = bookings.Cancel(context.Background(), intruder.ID, booking.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFeedbackStoresRating(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	svc := seedService(t, db, "Hydrating Facial", "85.00")
	user := seedUser(t, db, "ana@example.com")

	booking, err := bookings.Create(context.Background(), user, &dto.CreateBookingRequest{
		ServiceID: svc.ID, Date: "2026-09-01", Time: "10:00",
	})
	require.NoError(t, err)

	rating := 5
	updated, err := bookings.Feedback(context.Background(), user.ID, booking.ID, &dto.BookingFeedbackRequest{
		Rating:   &rating,
		Feedback: "wonderful",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, *updated.Rating)
	assert.Equal(t, "wonderful", updated.Feedback)
}
