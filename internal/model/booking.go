package model

import "time"

const (
	BookingStatusScheduled = "scheduled"
	BookingStatusCancelled = "cancelled"
)

// Booking holds an appointment slot. The partial composite unique index on
// (staff_id, date, time) turns a double-booking into a constraint violation
// instead of a silent overwrite; cancelled rows are excluded so their slot
// frees up again.
type Booking struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	ServiceID uint   `gorm:"index;not null"`
	StaffID   *uint  `gorm:"uniqueIndex:idx_staff_slot,where:status <> 'cancelled'"`
	Date      string `gorm:"size:10;not null;uniqueIndex:idx_staff_slot"` // YYYY-MM-DD
	Time      string `gorm:"size:5;not null;uniqueIndex:idx_staff_slot"`  // HH:MM
	Status    string `gorm:"size:16;index;not null;default:scheduled"`
	Notes     string `gorm:"type:text"`
	Rating    *int
	Feedback  string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
