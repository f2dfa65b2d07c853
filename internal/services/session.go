package services

import (
	"errors"
	"time"

	"quizmaster/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// SessionService manages server-side login state. Each login inserts one
// Session row; the browser holds a signed token wrapping the row id, so a
// session stays revocable (logout deletes the row) while the token itself
// is tamper-proof.
type SessionService struct {
	db     *gorm.DB
	secret []byte
}

func NewSessionService(db *gorm.DB, secret string) *SessionService {
	return &SessionService{db: db, secret: []byte(secret)}
}

func (s *SessionService) Create(user *models.User) (string, error) {
	session := models.Session{
		UserID: user.ID,
		Role:   user.Role,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": session.ID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate resolves a cookie token to its live session row. Expired
// tokens and revoked sessions both fail the same way.
func (s *SessionService) Validate(tokenString string) (*models.Session, error) {
	sid, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := s.db.First(&session, sid).Error; err != nil {
		return nil, errors.New("session revoked")
	}
	return &session, nil
}

// Destroy revokes the session behind a token. Invalid or already-revoked
// tokens are ignored so logout stays idempotent.
func (s *SessionService) Destroy(tokenString string) {
	sid, err := s.parseToken(tokenString)
	if err != nil {
		return
	}
	s.db.Delete(&models.Session{}, sid)
}

// SetFlash stores a one-shot message on the session.
func (s *SessionService) SetFlash(sessionID uint, message string) {
	s.db.Model(&models.Session{}).Where("id = ?", sessionID).Update("flash", message)
}

// PopFlash returns the pending flash message and clears it. The message
// is captured before the clearing update, which rewrites the loaded
// struct's Flash field in place.
func (s *SessionService) PopFlash(sessionID uint) string {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return ""
	}
	flash := session.Flash
	if flash != "" {
		s.db.Model(&session).Update("flash", "")
	}
	return flash
}

func (s *SessionService) parseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	sidFloat, ok := claims["sid"].(float64)
	if !ok {
		return 0, errors.New("invalid session id in token")
	}

	return uint(sidFloat), nil
}
