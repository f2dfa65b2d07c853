package services

import (
	"errors"
	"time"

	"quizmaster/internal/models"

	"gorm.io/gorm"
)

// ContentService owns the subject → chapter → quiz → question hierarchy.
// All writes are admin-only; the handlers enforce that via the session
// gate. Deletes cascade explicitly all the way down so the policy does
// not depend on engine FK enforcement.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Subjects

func (s *ContentService) ListSubjects() ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.db.Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *ContentService) GetSubject(id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &subject, nil
}

func (s *ContentService) CreateSubject(name, description string) (*models.Subject, error) {
	var existing models.Subject
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrDuplicateName
	}

	subject := models.Subject{Name: name, Description: description}
	if err := s.db.Create(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *ContentService) UpdateSubject(id uint, name, description string) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	subject.Name = name
	subject.Description = description
	if err := s.db.Save(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *ContentService) DeleteSubject(id uint) error {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		return notFoundOr(err)
	}

	s.db.Where("quiz_id IN (SELECT id FROM quizzes WHERE chapter_id IN (SELECT id FROM chapters WHERE subject_id = ?))", id).Delete(&models.Score{})
	s.db.Where("quiz_id IN (SELECT id FROM quizzes WHERE chapter_id IN (SELECT id FROM chapters WHERE subject_id = ?))", id).Delete(&models.Question{})
	s.db.Where("chapter_id IN (SELECT id FROM chapters WHERE subject_id = ?)", id).Delete(&models.Quiz{})
	s.db.Where("subject_id = ?", id).Delete(&models.Chapter{})
	return s.db.Delete(&subject).Error
}

// Chapters

func (s *ContentService) ListChapters(subjectID uint) ([]models.Chapter, error) {
	var chapters []models.Chapter
	if err := s.db.Where("subject_id = ?", subjectID).Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (s *ContentService) GetChapter(id uint) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := s.db.First(&chapter, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &chapter, nil
}

func (s *ContentService) CreateChapter(subjectID uint, name, description string) (*models.Chapter, error) {
	var subject models.Subject
	if err := s.db.First(&subject, subjectID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	chapter := models.Chapter{SubjectID: subjectID, Name: name, Description: description}
	if err := s.db.Create(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (s *ContentService) UpdateChapter(id uint, name, description string) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := s.db.First(&chapter, id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	chapter.Name = name
	chapter.Description = description
	if err := s.db.Save(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

// DeleteChapter removes the chapter and everything under it, returning
// the parent subject id so the caller can land back on the right listing.
func (s *ContentService) DeleteChapter(id uint) (uint, error) {
	var chapter models.Chapter
	if err := s.db.First(&chapter, id).Error; err != nil {
		return 0, notFoundOr(err)
	}

	s.db.Where("quiz_id IN (SELECT id FROM quizzes WHERE chapter_id = ?)", id).Delete(&models.Score{})
	s.db.Where("quiz_id IN (SELECT id FROM quizzes WHERE chapter_id = ?)", id).Delete(&models.Question{})
	s.db.Where("chapter_id = ?", id).Delete(&models.Quiz{})
	if err := s.db.Delete(&chapter).Error; err != nil {
		return 0, err
	}
	return chapter.SubjectID, nil
}

// Quizzes

func (s *ContentService) ListQuizzes(chapterID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := s.db.Where("chapter_id = ?", chapterID).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *ContentService) GetQuiz(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &quiz, nil
}

func (s *ContentService) CreateQuiz(chapterID uint, date, remarks string) (*models.Quiz, error) {
	var chapter models.Chapter
	if err := s.db.First(&chapter, chapterID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	dateOfQuiz, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	quiz := models.Quiz{ChapterID: chapterID, DateOfQuiz: dateOfQuiz, Remarks: remarks}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *ContentService) UpdateQuiz(id uint, date, remarks string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	dateOfQuiz, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	quiz.DateOfQuiz = dateOfQuiz
	quiz.Remarks = remarks
	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *ContentService) DeleteQuiz(id uint) (uint, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, id).Error; err != nil {
		return 0, notFoundOr(err)
	}

	s.db.Where("quiz_id = ?", id).Delete(&models.Score{})
	s.db.Where("quiz_id = ?", id).Delete(&models.Question{})
	if err := s.db.Delete(&quiz).Error; err != nil {
		return 0, err
	}
	return quiz.ChapterID, nil
}

// Questions

type QuestionInput struct {
	Statement     string
	Option1       string
	Option2       string
	Option3       string
	Option4       string
	CorrectOption int
}

func (s *ContentService) ListQuestions(quizID uint) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *ContentService) GetQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &question, nil
}

func (s *ContentService) CreateQuestion(quizID uint, input QuestionInput) (*models.Question, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if input.CorrectOption < 1 || input.CorrectOption > 4 {
		return nil, ErrInvalidOptionIndex
	}

	question := models.Question{
		QuizID:        quizID,
		Statement:     input.Statement,
		Option1:       input.Option1,
		Option2:       input.Option2,
		Option3:       input.Option3,
		Option4:       input.Option4,
		CorrectOption: input.CorrectOption,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *ContentService) UpdateQuestion(id uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if input.CorrectOption < 1 || input.CorrectOption > 4 {
		return nil, ErrInvalidOptionIndex
	}

	question.Statement = input.Statement
	question.Option1 = input.Option1
	question.Option2 = input.Option2
	question.Option3 = input.Option3
	question.Option4 = input.Option4
	question.CorrectOption = input.CorrectOption
	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *ContentService) DeleteQuestion(id uint) (uint, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return 0, notFoundOr(err)
	}

	if err := s.db.Delete(&question).Error; err != nil {
		return 0, err
	}
	return question.QuizID, nil
}
