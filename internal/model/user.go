package model

import "time"

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Permissions maps an admin module key ("products", "clients", ...) to the
// actions a staff user may perform ("read", "write").
type Permissions map[string]map[string]bool

type User struct {
	ID            uint   `gorm:"primaryKey"`
	Email         string `gorm:"size:255;uniqueIndex;not null"`
	Password      string `gorm:"size:255;not null"` // bcrypt hash
	FirstName     string `gorm:"size:100"`
	LastName      string `gorm:"size:100"`
	Phone         string `gorm:"size:32"`
	Role          string `gorm:"size:16;index;not null;default:user"`
	LoyaltyPoints int    `gorm:"not null;default:0"`
	ReferralCode  string `gorm:"size:64"`

	Favorites   []string          `gorm:"serializer:json"`
	Preferences map[string]string `gorm:"serializer:json"`
	Permissions Permissions       `gorm:"serializer:json;column:admin_permissions"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Client is a salon client record kept by staff (PII, permission-gated).
// Distinct from User: clients do not necessarily have storefront accounts.
type Client struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null"`
	Email         string `gorm:"size:255"`
	Phone         string `gorm:"size:32"`
	Bookings      int    `gorm:"not null;default:0"`
	LoyaltyPoints int    `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
