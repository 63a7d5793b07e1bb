package models

import "time"

// Expense is a single spending record belonging to a user.
// AmountCents is the amount in the smallest currency unit (e.g. cents).
type Expense struct {
	ID            uint `gorm:"primaryKey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        uint      `gorm:"index;not null"`
	Title         string    `gorm:"size:255;not null"`
	AmountCents   int64     `gorm:"not null"`
	Category      string    `gorm:"size:64;not null;index"`
	Description   string    `gorm:"size:1000"`
	Date          time.Time `gorm:"not null;index"`
	PaymentMethod string    `gorm:"size:64"`
	IsRecurring   bool      `gorm:"default:false;not null"`
}
