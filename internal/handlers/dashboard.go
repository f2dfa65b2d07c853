package handlers

import (
	"quizmaster/internal/middleware"
	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	auth     *services.AuthService
	content  *services.ContentService
	reports  *services.ReportService
	sessions *services.SessionService
}

func NewDashboardHandler(auth *services.AuthService, content *services.ContentService, reports *services.ReportService, sessions *services.SessionService) *DashboardHandler {
	return &DashboardHandler{auth: auth, content: content, reports: reports, sessions: sessions}
}

func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	ident := middleware.Get(c)
	user, err := h.auth.UserByID(ident.UserID)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/login")
		return
	}

	counts, err := h.reports.CountContent()
	if err != nil {
		counts = &services.ContentCounts{}
	}

	render(c, h.sessions, "admin_dashboard.tmpl", gin.H{
		"User":   user,
		"Counts": counts,
	})
}

func (h *DashboardHandler) UserDashboard(c *gin.Context) {
	ident := middleware.Get(c)
	user, err := h.auth.UserByID(ident.UserID)
	if err != nil {
		flashRedirect(c, h.sessions, "", "/login")
		return
	}

	subjects, err := h.content.ListSubjects()
	if err != nil {
		subjects = nil
	}

	render(c, h.sessions, "user_dashboard.tmpl", gin.H{
		"User":     user,
		"Subjects": subjects,
	})
}
