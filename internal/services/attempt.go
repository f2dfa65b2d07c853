package services

import (
	"encoding/json"
	"errors"
	"time"

	"quizmaster/internal/models"

	"gorm.io/gorm"
)

// AttemptService grades quiz submissions and keeps one Score row per
// (user, quiz). A submission is atomic: all answers arrive in a single
// request and the row is overwritten in place on re-attempts, so only
// the latest attempt is ever retrievable.
type AttemptService struct {
	db *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{db: db}
}

type AttemptResult struct {
	Score     models.Score
	Questions []models.Question
	Answers   map[uint]int
}

// ChaptersWithQuizzes returns a subject's chapters with their quizzes
// preloaded, for the learner's browsing view.
func (s *AttemptService) ChaptersWithQuizzes(subjectID uint) (*models.Subject, error) {
	var subject models.Subject
	err := s.db.Preload("Chapters.Quizzes").First(&subject, subjectID).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &subject, nil
}

// QuizForAttempt loads a quiz with its questions for rendering the
// attempt form. Correct options stay server-side; the handler must not
// leak them into the form.
func (s *AttemptService) QuizForAttempt(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Preload("Questions").First(&quiz, quizID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &quiz, nil
}

// Submit grades one full submission. Unanswered questions count toward
// the total but never toward the score. The write is an upsert keyed on
// (user_id, quiz_id): an existing row is overwritten field by field, a
// missing one is inserted. The user id always comes from the session,
// never from the request.
func (s *AttemptService) Submit(userID, quizID uint, answers map[uint]int) (*AttemptResult, error) {
	var quiz models.Quiz
	if err := s.db.Preload("Questions").First(&quiz, quizID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	selected := make(map[uint]int, len(answers))
	scored := 0
	for _, q := range quiz.Questions {
		chosen, ok := answers[q.ID]
		if !ok {
			continue
		}
		selected[q.ID] = chosen
		if chosen == q.CorrectOption {
			scored++
		}
	}

	encoded, err := json.Marshal(selected)
	if err != nil {
		return nil, err
	}

	var score models.Score
	err = s.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&score).Error
	switch {
	case err == nil:
		score.TotalScored = scored
		score.TotalQuestions = len(quiz.Questions)
		score.SelectedAnswers = string(encoded)
		score.AttemptedAt = time.Now()
		if err := s.db.Save(&score).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		score = models.Score{
			QuizID:          quizID,
			UserID:          userID,
			AttemptedAt:     time.Now(),
			TotalScored:     scored,
			TotalQuestions:  len(quiz.Questions),
			SelectedAnswers: string(encoded),
		}
		if err := s.db.Create(&score).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &AttemptResult{Score: score, Questions: quiz.Questions, Answers: selected}, nil
}

// Result returns the latest attempt for (user, quiz) with the stored
// answer map decoded for review.
func (s *AttemptService) Result(userID, quizID uint) (*AttemptResult, error) {
	var score models.Score
	err := s.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&score).Error
	if err != nil {
		return nil, notFoundOr(err)
	}

	var questions []models.Question
	if err := s.db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return nil, err
	}

	answers := make(map[uint]int)
	if score.SelectedAnswers != "" {
		if err := json.Unmarshal([]byte(score.SelectedAnswers), &answers); err != nil {
			return nil, err
		}
	}

	return &AttemptResult{Score: score, Questions: questions, Answers: answers}, nil
}
