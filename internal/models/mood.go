package models

import "time"

// Mood is an append-only log entry. No update or delete is ever exposed.
type Mood struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Score     int       `gorm:"not null"`
	Note      string
	CreatedAt time.Time `gorm:"not null"`
}
