package handlers

import (
	"net/http"
	"strconv"

	"quizmaster/internal/middleware"
	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// render draws a template, attaching the pending flash message and the
// request identity to the view data.
func render(c *gin.Context, sessions *services.SessionService, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	ident := middleware.Get(c)
	if ident.SessionID != 0 {
		if flash := sessions.PopFlash(ident.SessionID); flash != "" {
			data["Flash"] = flash
		}
	}
	data["Identity"] = ident
	c.HTML(http.StatusOK, name, data)
}

// flashRedirect stores a one-shot message on the session and redirects.
// Domain errors never surface as error pages; this is the only way they
// reach the user.
func flashRedirect(c *gin.Context, sessions *services.SessionService, message, location string) {
	ident := middleware.Get(c)
	if ident.SessionID != 0 && message != "" {
		sessions.SetFlash(ident.SessionID, message)
	}
	c.Redirect(http.StatusFound, location)
}
