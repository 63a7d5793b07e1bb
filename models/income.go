package models

import "time"

// Income is a single earning record belonging to a user.
// AmountCents is the amount in the smallest currency unit (e.g. cents).
type Income struct {
	ID                 uint `gorm:"primaryKey"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	UserID             uint      `gorm:"index;not null"`
	Title              string    `gorm:"size:255;not null"`
	AmountCents        int64     `gorm:"not null"`
	Category           string    `gorm:"size:64;not null;index"`
	Description        string    `gorm:"size:1000"`
	Date               time.Time `gorm:"not null;index"`
	Source             string    `gorm:"size:255"`
	IsRecurring        bool      `gorm:"default:false;not null"`
	RecurringFrequency string    `gorm:"size:16;not null;default:none"`
}
