package models

import "time"

// Note is a directed message between linked partners. The read flag flips as
// a side effect of the receiver viewing their notes; notes are never deleted.
type Note struct {
	ID         uint      `gorm:"primaryKey"`
	FromUserID uint      `gorm:"not null;index"`
	ToUserID   uint      `gorm:"not null;index"`
	Message    string    `gorm:"not null"`
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
}

// NoteListItem is the note row annotated with both parties' display names,
// as produced by the notes listing join.
type NoteListItem struct {
	ID           uint
	FromUserID   uint
	ToUserID     uint
	Message      string
	Read         bool
	CreatedAt    time.Time
	SenderName   string
	ReceiverName string
}
