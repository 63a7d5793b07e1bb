package models

import (
	"time"
)

// User is an account holder. PasswordHash is nil for accounts created via
// Google sign-in; those users authenticate only through the provider.
type User struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash []byte
	GoogleID     string `gorm:"size:255;index"`
	IsVerified   bool   `gorm:"default:false;not null"`
}
