package models

import "time"

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"size:255;not null" json:"-"`
	FullName      string    `gorm:"size:100;not null" json:"full_name"`
	Qualification string    `gorm:"size:100" json:"qualification,omitempty"`
	DOB           string    `gorm:"size:10" json:"dob,omitempty"`
	Role          string    `gorm:"size:10;not null;default:'user'" json:"role"`
	Scores        []Score   `gorm:"foreignKey:UserID" json:"scores,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
