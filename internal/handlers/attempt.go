package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"quizmaster/internal/middleware"
	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attempts *services.AttemptService
	sessions *services.SessionService
}

func NewAttemptHandler(attempts *services.AttemptService, sessions *services.SessionService) *AttemptHandler {
	return &AttemptHandler{attempts: attempts, sessions: sessions}
}

// ViewQuizzes shows a subject's quizzes grouped by chapter for browsing.
func (h *AttemptHandler) ViewQuizzes(c *gin.Context) {
	subjectID, ok := idParam(c, "subject_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/user_dashboard")
		return
	}

	subject, err := h.attempts.ChaptersWithQuizzes(subjectID)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/user_dashboard")
		return
	}
	render(c, h.sessions, "view_quizzes.tmpl", gin.H{"Subject": subject})
}

// ShowAttempt renders the attempt form. The template receives questions
// without their correct options.
func (h *AttemptHandler) ShowAttempt(c *gin.Context) {
	quizID, ok := idParam(c, "quiz_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/user_dashboard")
		return
	}

	quiz, err := h.attempts.QuizForAttempt(quizID)
	if err != nil {
		flashRedirect(c, h.sessions, "quiz not found", "/user_dashboard")
		return
	}
	render(c, h.sessions, "attempt_quiz.tmpl", gin.H{"Quiz": quiz})
}

// Submit grades the posted answers for the session's own user and lands
// on the results page. Answer fields are named question_<id>.
func (h *AttemptHandler) Submit(c *gin.Context) {
	quizID, ok := idParam(c, "quiz_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/user_dashboard")
		return
	}

	answers := make(map[uint]int)
	if err := c.Request.ParseForm(); err == nil {
		for field, values := range c.Request.PostForm {
			if !strings.HasPrefix(field, "question_") || len(values) == 0 {
				continue
			}
			qid, err := strconv.ParseUint(strings.TrimPrefix(field, "question_"), 10, 32)
			if err != nil {
				continue
			}
			chosen, err := strconv.Atoi(values[0])
			if err != nil {
				continue
			}
			answers[uint(qid)] = chosen
		}
	}

	ident := middleware.Get(c)
	if _, err := h.attempts.Submit(ident.UserID, quizID, answers); err != nil {
		flashRedirect(c, h.sessions, "quiz not found", "/user_dashboard")
		return
	}
	flashRedirect(c, h.sessions, "", fmt.Sprintf("/quiz_results/%d", quizID))
}

// Results shows the latest attempt for the session user with the stored
// answers laid over the questions.
func (h *AttemptHandler) Results(c *gin.Context) {
	quizID, ok := idParam(c, "quiz_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/user_dashboard")
		return
	}

	ident := middleware.Get(c)
	result, err := h.attempts.Result(ident.UserID, quizID)
	if err != nil {
		flashRedirect(c, h.sessions, "no attempt recorded for this quiz", "/user_dashboard")
		return
	}
	render(c, h.sessions, "quiz_results.tmpl", gin.H{
		"Score":     result.Score,
		"Questions": result.Questions,
		"Answers":   result.Answers,
	})
}
