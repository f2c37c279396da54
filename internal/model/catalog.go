package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"size:255;not null"`
	Category      string          `gorm:"size:100;index"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	OriginalPrice decimal.NullDecimal
	Stock         int    `gorm:"not null;default:0"`
	Description   string `gorm:"type:text"`
	ImageURL      string `gorm:"size:512"`
	Rating        float64
	Reviews       int
	IsActive      bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Service is a bookable salon treatment. Duration is in minutes.
type Service struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null"`
	Category    string          `gorm:"size:100;index"`
	Duration    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"type:text"`
	ImageURL    string          `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Staff struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Role         string `gorm:"size:100;not null"`
	Availability string `gorm:"size:255"`
	ImageURL     string `gorm:"size:512"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
