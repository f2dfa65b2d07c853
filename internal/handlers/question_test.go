package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"quizmaster/internal/models"
)

// An edit must not blank out a question: the update path applies the
// same required-statement check as create.
func TestQuestionUpdateRejectsBlankStatement(t *testing.T) {
	app := newTestApp(t)
	_, questions := app.seedQuiz(t)
	token := app.login(t, models.RoleAdmin)

	form := url.Values{}
	form.Set("question_statement", "   ")
	form.Set("option1", "a")
	form.Set("option2", "b")
	form.Set("option3", "c")
	form.Set("option4", "d")
	form.Set("correct_option", "1")
	w := postForm(app.router, "/admin/questions/edit/"+strconv.Itoa(int(questions[0].ID)), token, form)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}

	var question models.Question
	if err := app.db.First(&question, questions[0].ID).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}
	if question.Statement != questions[0].Statement {
		t.Fatalf("statement = %q after blank edit, want %q unchanged", question.Statement, questions[0].Statement)
	}
	if question.CorrectOption != questions[0].CorrectOption {
		t.Fatalf("correct option = %d after blank edit, want %d unchanged", question.CorrectOption, questions[0].CorrectOption)
	}
}

func TestQuestionUpdatePersistsChanges(t *testing.T) {
	app := newTestApp(t)
	_, questions := app.seedQuiz(t)
	token := app.login(t, models.RoleAdmin)

	form := url.Values{}
	form.Set("question_statement", "revised statement")
	form.Set("option1", "w")
	form.Set("option2", "x")
	form.Set("option3", "y")
	form.Set("option4", "z")
	form.Set("correct_option", "3")
	w := postForm(app.router, "/admin/questions/edit/"+strconv.Itoa(int(questions[0].ID)), token, form)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}

	var question models.Question
	if err := app.db.First(&question, questions[0].ID).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}
	if question.Statement != "revised statement" || question.CorrectOption != 3 {
		t.Fatalf("update not persisted: statement=%q correct=%d", question.Statement, question.CorrectOption)
	}
}
