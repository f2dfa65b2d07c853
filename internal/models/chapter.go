package models

type Chapter struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SubjectID   uint    `gorm:"not null;index" json:"subject_id"`
	Subject     Subject `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string  `gorm:"size:150;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Quizzes     []Quiz  `gorm:"foreignKey:ChapterID" json:"quizzes,omitempty"`
}
