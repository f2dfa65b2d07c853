package services

import (
	"errors"
	"testing"

	"quizmaster/internal/models"
)

func TestCreateSubjectRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)

	if _, err := content.CreateSubject("Math", ""); err != nil {
		t.Fatalf("CreateSubject failed: %v", err)
	}
	if _, err := content.CreateSubject("Math", "again"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate CreateSubject error = %v, want ErrDuplicateName", err)
	}
}

func TestUpdateMissingSubjectIsNotFound(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)

	if _, err := content.UpdateSubject(99, "Ghost", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateSubject on missing id = %v, want ErrNotFound", err)
	}
}

func TestDeleteSubjectCascades(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	quiz, _ := seedMathQuiz(t, db)
	user := createTestUser(t, db, "alice@example.com", "pw", models.RoleUser)

	score := models.Score{QuizID: quiz.ID, UserID: user.ID, TotalScored: 1, TotalQuestions: 2}
	if err := db.Create(&score).Error; err != nil {
		t.Fatalf("create score: %v", err)
	}

	var subject models.Subject
	if err := db.Where("name = ?", "Math").First(&subject).Error; err != nil {
		t.Fatalf("load subject: %v", err)
	}
	if err := content.DeleteSubject(subject.ID); err != nil {
		t.Fatalf("DeleteSubject failed: %v", err)
	}

	for _, check := range []struct {
		name  string
		model interface{}
	}{
		{"subjects", &models.Subject{}},
		{"chapters", &models.Chapter{}},
		{"quizzes", &models.Quiz{}},
		{"questions", &models.Question{}},
		{"scores", &models.Score{}},
	} {
		if n := countRows(t, db, check.model); n != 0 {
			t.Fatalf("%d %s left after subject delete", n, check.name)
		}
	}
}

func TestDeleteChapterCascadesAndReturnsParent(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	seedMathQuiz(t, db)

	var chapter models.Chapter
	if err := db.Where("name = ?", "Algebra").First(&chapter).Error; err != nil {
		t.Fatalf("load chapter: %v", err)
	}

	subjectID, err := content.DeleteChapter(chapter.ID)
	if err != nil {
		t.Fatalf("DeleteChapter failed: %v", err)
	}
	if subjectID != chapter.SubjectID {
		t.Fatalf("DeleteChapter parent = %d, want %d", subjectID, chapter.SubjectID)
	}
	if n := countRows(t, db, &models.Quiz{}); n != 0 {
		t.Fatalf("%d quizzes left after chapter delete", n)
	}
	if n := countRows(t, db, &models.Question{}); n != 0 {
		t.Fatalf("%d questions left after chapter delete", n)
	}
	if n := countRows(t, db, &models.Subject{}); n != 1 {
		t.Fatalf("subject deleted along with chapter")
	}
}

func TestCreateQuizRejectsBadDate(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	seedMathQuiz(t, db)

	var chapter models.Chapter
	if err := db.First(&chapter).Error; err != nil {
		t.Fatalf("load chapter: %v", err)
	}
	before := countRows(t, db, &models.Quiz{})

	if _, err := content.CreateQuiz(chapter.ID, "01/02/2024", "bad date"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("CreateQuiz error = %v, want ErrInvalidDateFormat", err)
	}
	if after := countRows(t, db, &models.Quiz{}); after != before {
		t.Fatalf("quiz row written despite invalid date")
	}
}

func TestCreateQuizParsesDate(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	seedMathQuiz(t, db)

	var chapter models.Chapter
	if err := db.First(&chapter).Error; err != nil {
		t.Fatalf("load chapter: %v", err)
	}

	quiz, err := content.CreateQuiz(chapter.ID, "2024-06-15", "midterm")
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if got := quiz.DateOfQuiz.Format(models.DateLayout); got != "2024-06-15" {
		t.Fatalf("DateOfQuiz = %s, want 2024-06-15", got)
	}
}

func TestCreateQuestionRejectsOptionOutOfRange(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	quiz, _ := seedMathQuiz(t, db)
	before := countRows(t, db, &models.Question{})

	for _, correct := range []int{0, 5, -1} {
		input := QuestionInput{
			Statement: "bad", Option1: "a", Option2: "b", Option3: "c", Option4: "d",
			CorrectOption: correct,
		}
		if _, err := content.CreateQuestion(quiz.ID, input); !errors.Is(err, ErrInvalidOptionIndex) {
			t.Fatalf("CreateQuestion(correct=%d) error = %v, want ErrInvalidOptionIndex", correct, err)
		}
	}
	if after := countRows(t, db, &models.Question{}); after != before {
		t.Fatalf("question written despite invalid correct option")
	}
}

func TestCreateChapterUnderMissingSubject(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)

	if _, err := content.CreateChapter(42, "Orphan", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("CreateChapter under missing subject = %v, want ErrNotFound", err)
	}
}

func TestDeleteQuestionReturnsQuiz(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	quiz, questions := seedMathQuiz(t, db)

	quizID, err := content.DeleteQuestion(questions[0].ID)
	if err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	if quizID != quiz.ID {
		t.Fatalf("DeleteQuestion parent = %d, want %d", quizID, quiz.ID)
	}
	if n := countRows(t, db, &models.Question{}); n != 1 {
		t.Fatalf("question count = %d after delete, want 1", n)
	}
}
