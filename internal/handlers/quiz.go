package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	content  *services.ContentService
	sessions *services.SessionService
}

func NewQuizHandler(content *services.ContentService, sessions *services.SessionService) *QuizHandler {
	return &QuizHandler{content: content, sessions: sessions}
}

func (h *QuizHandler) List(c *gin.Context) {
	chapterID, ok := idParam(c, "chapter_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	chapter, err := h.content.GetChapter(chapterID)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	quizzes, err := h.content.ListQuizzes(chapterID)
	if err != nil {
		flashRedirect(c, h.sessions, "could not load quizzes", "/admin/subjects")
		return
	}
	render(c, h.sessions, "quizzes.tmpl", gin.H{"Chapter": chapter, "Quizzes": quizzes})
}

// Create parses date_of_quiz strictly; a malformed date re-displays the
// listing with the form and writes nothing.
func (h *QuizHandler) Create(c *gin.Context) {
	chapterID, ok := idParam(c, "chapter_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	_, err := h.content.CreateQuiz(chapterID, c.PostForm("date_of_quiz"), c.PostForm("remarks"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateFormat) {
			chapter, cerr := h.content.GetChapter(chapterID)
			if cerr != nil {
				flashRedirect(c, h.sessions, "", "/admin/subjects")
				return
			}
			quizzes, _ := h.content.ListQuizzes(chapterID)
			c.HTML(http.StatusBadRequest, "quizzes.tmpl", gin.H{
				"Chapter": chapter,
				"Quizzes": quizzes,
				"Error":   "date must be in YYYY-MM-DD format",
			})
			return
		}
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "quiz created", fmt.Sprintf("/admin/quizzes/%d", chapterID))
}

// Dispatch routes /admin/quizzes/delete/{id} and
// /admin/quizzes/edit/{id}; see the chapter handler for why these share
// the wildcard route.
func (h *QuizHandler) Dispatch(c *gin.Context) {
	switch c.Param("chapter_id") {
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

func (h *QuizHandler) ShowEdit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	quiz, err := h.content.GetQuiz(id)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	render(c, h.sessions, "quiz_edit.tmpl", gin.H{"Quiz": quiz})
}

func (h *QuizHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	quiz, err := h.content.UpdateQuiz(id, c.PostForm("date_of_quiz"), c.PostForm("remarks"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateFormat) {
			stale, gerr := h.content.GetQuiz(id)
			if gerr != nil {
				flashRedirect(c, h.sessions, "", "/admin/subjects")
				return
			}
			c.HTML(http.StatusBadRequest, "quiz_edit.tmpl", gin.H{
				"Quiz":  stale,
				"Error": "date must be in YYYY-MM-DD format",
			})
			return
		}
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "quiz updated", fmt.Sprintf("/admin/quizzes/%d", quiz.ChapterID))
}

func (h *QuizHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	chapterID, err := h.content.DeleteQuiz(id)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "quiz deleted", fmt.Sprintf("/admin/quizzes/%d", chapterID))
}
