package services

import (
	"errors"
	"testing"

	"quizmaster/internal/models"
)

func TestRegisterCreatesLearner(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	user, err := auth.Register(RegisterInput{
		Email:    "alice@example.com",
		Password: "secret",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Fatalf("new account role = %q, want %q", user.Role, models.RoleUser)
	}
	if user.PasswordHash == "secret" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmailLeavesTableUnchanged(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	if _, err := auth.Register(RegisterInput{Email: "alice@example.com", Password: "secret", FullName: "Alice"}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	before := countRows(t, db, &models.User{})

	_, err := auth.Register(RegisterInput{Email: "alice@example.com", Password: "other", FullName: "Imposter"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("duplicate Register error = %v, want ErrDuplicateEmail", err)
	}
	if after := countRows(t, db, &models.User{}); after != before {
		t.Fatalf("user count changed from %d to %d on duplicate registration", before, after)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)
	createTestUser(t, db, "bob@example.com", "right", models.RoleUser)

	if _, err := auth.Login("bob@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmailMatchesWrongPassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)
	createTestUser(t, db, "bob@example.com", "right", models.RoleUser)

	_, errUnknown := auth.Login("nobody@example.com", "right")
	_, errWrong := auth.Login("bob@example.com", "wrong")
	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Fatalf("login failures differ: unknown=%v wrong=%v", errUnknown, errWrong)
	}
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)
	created := createTestUser(t, db, "carol@example.com", "pw123456", models.RoleAdmin)

	user, err := auth.Login("carol@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != created.ID || user.Role != models.RoleAdmin {
		t.Fatalf("Login returned user %d/%s, want %d/%s", user.ID, user.Role, created.ID, models.RoleAdmin)
	}
}
