package models

import "time"

// User is an account. PartnerID points at the single linked partner account;
// the link is symmetric: whenever A.PartnerID = B, B.PartnerID = A.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	DisplayName  string    `gorm:"not null" json:"display_name"`
	PartnerID    *uint     `gorm:"index" json:"partner_id"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
