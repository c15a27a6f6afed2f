package models

import "time"

// Todo belongs to exactly one user. The linked partner sees it read-only;
// only the owner may toggle or delete it.
type Todo struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Text      string    `gorm:"not null"`
	Done      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}
