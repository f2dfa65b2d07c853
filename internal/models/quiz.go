package models

import "time"

type Quiz struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ChapterID  uint       `gorm:"not null;index" json:"chapter_id"`
	Chapter    Chapter    `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
	DateOfQuiz time.Time  `json:"date_of_quiz"`
	Remarks    string     `gorm:"type:text" json:"remarks,omitempty"`
	Questions  []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// DateLayout is the only accepted textual form for date_of_quiz.
const DateLayout = "2006-01-02"
