package models

import "time"

// DateIdea is reserved schema: the table ships with the app but no route
// exercises it yet.
type DateIdea struct {
	ID        uint      `gorm:"primaryKey"`
	AddedBy   uint      `gorm:"not null;index"`
	Idea      string    `gorm:"not null"`
	Done      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}
