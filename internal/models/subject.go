package models

type Subject struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Chapters    []Chapter `gorm:"foreignKey:SubjectID" json:"chapters,omitempty"`
}
