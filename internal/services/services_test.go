package services

import (
	"path/filepath"
	"testing"
	"time"

	"quizmaster/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Chapter{},
		&models.Quiz{},
		&models.Question{},
		&models.Score{},
		&models.Session{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, password, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Test User",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// seedMathQuiz builds the Math → Algebra → quiz hierarchy with two
// questions (correct options 2 and 4) and returns the quiz and questions.
func seedMathQuiz(t *testing.T, db *gorm.DB) (*models.Quiz, []models.Question) {
	t.Helper()

	subject := models.Subject{Name: "Math", Description: "Mathematics"}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}
	chapter := models.Chapter{SubjectID: subject.ID, Name: "Algebra"}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatalf("create chapter: %v", err)
	}
	quiz := models.Quiz{ChapterID: chapter.ID, DateOfQuiz: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	questions := []models.Question{
		{QuizID: quiz.ID, Statement: "2 + 2 = ?", Option1: "3", Option2: "4", Option3: "5", Option4: "6", CorrectOption: 2},
		{QuizID: quiz.ID, Statement: "x + 1 = 2, x = ?", Option1: "0", Option2: "2", Option3: "-1", Option4: "1", CorrectOption: 4},
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
	}
	return &quiz, questions
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
