package handlers

import (
	"errors"
	"net/http"

	"quizmaster/internal/middleware"
	"quizmaster/internal/models"
	"quizmaster/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *services.SessionService
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type registerForm struct {
	Email         string `form:"email" binding:"required"`
	Password      string `form:"password" binding:"required"`
	FullName      string `form:"full_name" binding:"required"`
	Qualification string `form:"qualification"`
	DOB           string `form:"dob"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{})
}

// Register creates a learner account and sends the user to the login
// page; registration never establishes a session by itself. Failures
// re-render the form: there is no session yet to flash into.
func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.tmpl", gin.H{"Error": "all required fields must be filled in"})
		return
	}

	_, err := h.auth.Register(services.RegisterInput{
		Email:         form.Email,
		Password:      form.Password,
		FullName:      form.FullName,
		Qualification: form.Qualification,
		DOB:           form.DOB,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			c.HTML(http.StatusBadRequest, "register.tmpl", gin.H{"Error": "email already registered"})
			return
		}
		c.HTML(http.StatusInternalServerError, "register.tmpl", gin.H{"Error": "registration failed"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{})
}

// Login verifies credentials, opens a session and routes the user to the
// dashboard matching their role. The failure message never says which of
// email or password was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", gin.H{"Error": "email and password are required"})
		return
	}

	user, err := h.auth.Login(form.Email, form.Password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.tmpl", gin.H{"Error": "invalid credentials"})
		return
	}

	token, err := h.sessions.Create(user)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.tmpl", gin.H{"Error": "could not establish session"})
		return
	}

	c.SetCookie(middleware.CookieName, token, 24*60*60, "/", "", false, true)

	if user.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin_dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/user_dashboard")
}

// Logout revokes the session and clears the cookie. Idempotent: a
// missing or stale cookie still lands on the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.CookieName); err == nil && token != "" {
		h.sessions.Destroy(token)
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
