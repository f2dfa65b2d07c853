package models

import "time"

// Session is one active login. The browser cookie carries a signed token
// wrapping the row id, so logout can revoke server-side.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Role      string    `gorm:"size:10;not null" json:"role"`
	Flash     string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
