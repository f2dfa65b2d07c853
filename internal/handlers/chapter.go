package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	content  *services.ContentService
	sessions *services.SessionService
}

func NewChapterHandler(content *services.ContentService, sessions *services.SessionService) *ChapterHandler {
	return &ChapterHandler{content: content, sessions: sessions}
}

func (h *ChapterHandler) List(c *gin.Context) {
	subjectID, ok := idParam(c, "subject_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	subject, err := h.content.GetSubject(subjectID)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	chapters, err := h.content.ListChapters(subjectID)
	if err != nil {
		flashRedirect(c, h.sessions, "could not load chapters", "/admin/subjects")
		return
	}
	render(c, h.sessions, "chapters.tmpl", gin.H{"Subject": subject, "Chapters": chapters})
}

func (h *ChapterHandler) Create(c *gin.Context) {
	subjectID, ok := idParam(c, "subject_id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	listing := fmt.Sprintf("/admin/chapters/%d", subjectID)

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		flashRedirect(c, h.sessions, "chapter name is required", listing)
		return
	}

	if _, err := h.content.CreateChapter(subjectID, name, c.PostForm("description")); err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "chapter created", listing)
}

// Dispatch routes /admin/chapters/delete/{id} and
// /admin/chapters/edit/{id}, which share the wildcard route with the
// listing; the first segment carries the verb.
func (h *ChapterHandler) Dispatch(c *gin.Context) {
	switch c.Param("subject_id") {
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

func (h *ChapterHandler) ShowEdit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	chapter, err := h.content.GetChapter(id)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	render(c, h.sessions, "chapter_edit.tmpl", gin.H{"Chapter": chapter})
}

func (h *ChapterHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		flashRedirect(c, h.sessions, "chapter name is required", "/admin/subjects")
		return
	}

	chapter, err := h.content.UpdateChapter(id, name, c.PostForm("description"))
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "chapter updated", fmt.Sprintf("/admin/chapters/%d", chapter.SubjectID))
}

// Delete lands back on the parent subject's chapter listing rather than
// the subject list, so the admin keeps their place in the hierarchy.
func (h *ChapterHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	subjectID, err := h.content.DeleteChapter(id)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "chapter deleted", fmt.Sprintf("/admin/chapters/%d", subjectID))
}
