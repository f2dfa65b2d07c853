package models

type Question struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	QuizID        uint   `gorm:"not null;index" json:"quiz_id"`
	Quiz          Quiz   `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Statement     string `gorm:"type:text;not null" json:"question_statement"`
	Option1       string `gorm:"size:255;not null" json:"option1"`
	Option2       string `gorm:"size:255;not null" json:"option2"`
	Option3       string `gorm:"size:255;not null" json:"option3"`
	Option4       string `gorm:"size:255;not null" json:"option4"`
	CorrectOption int    `gorm:"not null" json:"correct_option"`
}
