package middleware

import (
	"net/http"

	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie the gate reads on every request.
const CookieName = "quiz_session"

const identityKey = "identity"

// Identity is the per-request auth context. The gate populates it once
// from the session row; handlers never touch ambient session state.
type Identity struct {
	SessionID uint
	UserID    uint
	Role      string
}

// RequireRole gates a route group on a live session with the given role.
// Missing cookie, bad token, revoked session and role mismatch all take
// the same branch: a redirect to the login page.
func RequireRole(sessions *services.SessionService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		session, err := sessions.Validate(token)
		if err != nil || session.Role != role {
			redirectToLogin(c)
			return
		}

		c.Set(identityKey, Identity{
			SessionID: session.ID,
			UserID:    session.UserID,
			Role:      session.Role,
		})
		c.Next()
	}
}

// Get returns the identity the gate stored for this request. Only valid
// on routes behind RequireRole.
func Get(c *gin.Context) Identity {
	ident, _ := c.Get(identityKey)
	identity, _ := ident.(Identity)
	return identity
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
