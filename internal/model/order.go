package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"

	PaymentMethodCOD  = "cod"
	PaymentMethodCard = "card"

	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Order is one checkout attempt. Monetary fields and the contact/address
// snapshot are immutable after creation; only status, payment fields and the
// inventory guard are ever updated.
type Order struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	Email           string            `gorm:"size:255"`
	Phone           string            `gorm:"size:32"`
	ShippingAddress map[string]string `gorm:"serializer:json"`

	Subtotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency string          `gorm:"size:8;not null;default:usd"`

	Status        string `gorm:"size:20;index;not null;default:pending"`
	PaymentMethod string `gorm:"size:16;not null"`
	PaymentStatus string `gorm:"size:16;index;not null;default:unpaid"`

	// Opaque references into the payment provider.
	CheckoutSessionID string `gorm:"size:255;index"`
	PaymentIntentID   string `gorm:"size:255"`

	// Guards the card path's deferred stock deduction so repeated
	// verification never decrements twice.
	InventoryDeducted bool `gorm:"not null;default:false"`

	Lines []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderLine snapshots one product purchase. UnitPrice is the server-side
// product price at validation time, never a client-supplied value.
type OrderLine struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"index;not null"`
	ProductID uint            `gorm:"index;not null"`
	Qty       int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
}
