package models

import "time"

// Budget is a per-category spending cap. A user holds at most one budget
// per (category, period); idx_budget_owner_scope backs the handler-level
// duplicate check. LimitCents is the cap in the smallest currency unit.
// EndDate is optional; when present it must not precede StartDate.
type Budget struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint      `gorm:"not null;uniqueIndex:idx_budget_owner_scope"`
	Category    string    `gorm:"size:64;not null;uniqueIndex:idx_budget_owner_scope"`
	Period      string    `gorm:"size:16;not null;uniqueIndex:idx_budget_owner_scope"`
	LimitCents  int64     `gorm:"not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     *time.Time
	Rollover    bool   `gorm:"default:false;not null"`
	Description string `gorm:"size:1000"`
}
