package handlers

import (
	"quizmaster/internal/middleware"
	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports  *services.ReportService
	sessions *services.SessionService
}

func NewReportHandler(reports *services.ReportService, sessions *services.SessionService) *ReportHandler {
	return &ReportHandler{reports: reports, sessions: sessions}
}

// AdminUsers lists every user with their aggregate score percentage.
func (h *ReportHandler) AdminUsers(c *gin.Context) {
	overviews, err := h.reports.UserOverviews()
	if err != nil {
		flashRedirect(c, h.sessions, "could not load users", "/admin_dashboard")
		return
	}
	render(c, h.sessions, "users.tmpl", gin.H{"Overviews": overviews})
}

// QuizSummary shows the learner's accumulated results per chapter.
func (h *ReportHandler) QuizSummary(c *gin.Context) {
	ident := middleware.Get(c)
	summaries, err := h.reports.ChapterSummaries(ident.UserID)
	if err != nil {
		flashRedirect(c, h.sessions, "could not load summary", "/user_dashboard")
		return
	}
	render(c, h.sessions, "quiz_summary.tmpl", gin.H{"Summaries": summaries})
}

func (h *ReportHandler) AdminSearch(c *gin.Context) {
	query := c.Query("query")
	results, err := h.reports.SearchAdmin(query)
	if err != nil {
		flashRedirect(c, h.sessions, "search failed", "/admin_dashboard")
		return
	}
	render(c, h.sessions, "search.tmpl", gin.H{"Query": query, "Results": results, "Admin": true})
}

func (h *ReportHandler) UserSearch(c *gin.Context) {
	query := c.Query("query")
	results, err := h.reports.SearchUser(query)
	if err != nil {
		flashRedirect(c, h.sessions, "search failed", "/user_dashboard")
		return
	}
	render(c, h.sessions, "search.tmpl", gin.H{"Query": query, "Results": results, "Admin": false})
}
