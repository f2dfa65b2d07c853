package models

import "time"

// Score holds a learner's most recent graded attempt for one quiz. The
// composite unique index backs the insert-or-overwrite write path: at most
// one row ever exists per (user, quiz).
type Score struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	QuizID          uint      `gorm:"not null;uniqueIndex:idx_score_user_quiz" json:"quiz_id"`
	Quiz            Quiz      `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	UserID          uint      `gorm:"not null;uniqueIndex:idx_score_user_quiz" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AttemptedAt     time.Time `json:"time_stamp_of_attempt"`
	TotalScored     int       `gorm:"not null" json:"total_scored"`
	TotalQuestions  int       `gorm:"not null" json:"total_questions"`
	SelectedAnswers string    `gorm:"type:text" json:"selected_answers,omitempty"`
}
