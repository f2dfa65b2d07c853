package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"quizmaster/internal/models"
	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	content  *services.ContentService
	sessions *services.SessionService
}

func NewQuestionHandler(content *services.ContentService, sessions *services.SessionService) *QuestionHandler {
	return &QuestionHandler{content: content, sessions: sessions}
}

func questionFormInput(c *gin.Context) (services.QuestionInput, error) {
	correct, err := strconv.Atoi(c.PostForm("correct_option"))
	if err != nil {
		return services.QuestionInput{}, services.ErrInvalidOptionIndex
	}
	return services.QuestionInput{
		Statement:     strings.TrimSpace(c.PostForm("question_statement")),
		Option1:       c.PostForm("option1"),
		Option2:       c.PostForm("option2"),
		Option3:       c.PostForm("option3"),
		Option4:       c.PostForm("option4"),
		CorrectOption: correct,
	}, nil
}

func (h *QuestionHandler) List(c *gin.Context) {
	quizID, ok := idParam(c, "quiz_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	quiz, err := h.content.GetQuiz(quizID)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	questions, err := h.content.ListQuestions(quizID)
	if err != nil {
		flashRedirect(c, h.sessions, "could not load questions", "/admin/subjects")
		return
	}
	render(c, h.sessions, "questions.tmpl", gin.H{"Quiz": quiz, "Questions": questions})
}

func (h *QuestionHandler) Create(c *gin.Context) {
	quizID, ok := idParam(c, "quiz_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	input, err := questionFormInput(c)
	if err == nil {
		if input.Statement == "" {
			flashRedirect(c, h.sessions, "question statement is required", fmt.Sprintf("/admin/questions/%d", quizID))
			return
		}
		_, err = h.content.CreateQuestion(quizID, input)
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidOptionIndex) {
			quiz, gerr := h.content.GetQuiz(quizID)
			if gerr != nil {
				flashRedirect(c, h.sessions, "", "/admin/subjects")
				return
			}
			questions, _ := h.content.ListQuestions(quizID)
			c.HTML(http.StatusBadRequest, "questions.tmpl", gin.H{
				"Quiz":      quiz,
				"Questions": questions,
				"Error":     "correct option must be a number between 1 and 4",
			})
			return
		}
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "question created", fmt.Sprintf("/admin/questions/%d", quizID))
}

// Dispatch routes /admin/questions/delete/{id} and
// /admin/questions/edit/{id}; see the chapter handler for why these
// share the wildcard route.
func (h *QuestionHandler) Dispatch(c *gin.Context) {
	switch c.Param("quiz_id") {
	case "delete":
		if c.Request.Method == http.MethodGet {
			h.Delete(c)
			return
		}
	case "edit":
		if c.Request.Method == http.MethodGet {
			h.ShowEdit(c)
		} else {
			h.Update(c)
		}
		return
	}
	flashRedirect(c, h.sessions, "", "/admin/subjects")
}

func (h *QuestionHandler) ShowEdit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	question, err := h.content.GetQuestion(id)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	render(c, h.sessions, "question_edit.tmpl", gin.H{"Question": question})
}

func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	input, err := questionFormInput(c)
	var question *models.Question
	if err == nil {
		if input.Statement == "" {
			stale, gerr := h.content.GetQuestion(id)
			if gerr != nil {
				flashRedirect(c, h.sessions, "", "/admin/subjects")
				return
			}
			flashRedirect(c, h.sessions, "question statement is required", fmt.Sprintf("/admin/questions/%d", stale.QuizID))
			return
		}
		question, err = h.content.UpdateQuestion(id, input)
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidOptionIndex) {
			stale, gerr := h.content.GetQuestion(id)
			if gerr != nil {
				flashRedirect(c, h.sessions, "", "/admin/subjects")
				return
			}
			c.HTML(http.StatusBadRequest, "question_edit.tmpl", gin.H{
				"Question": stale,
				"Error":    "correct option must be a number between 1 and 4",
			})
			return
		}
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "question updated", fmt.Sprintf("/admin/questions/%d", question.QuizID))
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	quizID, err := h.content.DeleteQuestion(id)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "question deleted", fmt.Sprintf("/admin/questions/%d", quizID))
}
