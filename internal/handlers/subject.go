package handlers

import (
	"errors"
	"strings"

	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

type SubjectHandler struct {
	content  *services.ContentService
	sessions *services.SessionService
}

func NewSubjectHandler(content *services.ContentService, sessions *services.SessionService) *SubjectHandler {
	return &SubjectHandler{content: content, sessions: sessions}
}

func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.content.ListSubjects()
	if err != nil {
		flashRedirect(c, h.sessions, "could not load subjects", "/admin_dashboard")
		return
	}
	render(c, h.sessions, "subjects.tmpl", gin.H{"Subjects": subjects})
}

func (h *SubjectHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := c.PostForm("description")
	if name == "" {
		flashRedirect(c, h.sessions, "subject name is required", "/admin/subjects")
		return
	}

	if _, err := h.content.CreateSubject(name, description); err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			flashRedirect(c, h.sessions, "a subject with that name already exists", "/admin/subjects")
			return
		}
		flashRedirect(c, h.sessions, "could not create subject", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "subject created", "/admin/subjects")
}

func (h *SubjectHandler) ShowEdit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	subject, err := h.content.GetSubject(id)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	render(c, h.sessions, "subject_edit.tmpl", gin.H{"Subject": subject})
}

func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		flashRedirect(c, h.sessions, "subject name is required", "/admin/subjects")
		return
	}

	if _, err := h.content.UpdateSubject(id, name, c.PostForm("description")); err != nil {
		// Missing row is a silent no-op back to the listing.
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "subject updated", "/admin/subjects")
}

func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}

	if err := h.content.DeleteSubject(id); err != nil {
		flashRedirect(c, h.sessions, "", "/admin/subjects")
		return
	}
	flashRedirect(c, h.sessions, "subject and its contents deleted", "/admin/subjects")
}
