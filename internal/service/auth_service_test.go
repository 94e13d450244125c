package service

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"halodkm-be-svc/internal/config"
	"halodkm-be-svc/internal/models"
)

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	hashed, err := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo.Create(&models.User{
		Username: "takmir",
		Password: string(hashed),
		FullName: "Pak Takmir",
		Role:     models.RoleAdmin,
	})
	cfg := config.JWTConfig{Secret: "test-secret", ExpiryHours: 1}
	return NewAuthService(repo, cfg, testLogger()), repo
}

func TestLoginAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, user, err := svc.Login("takmir", "rahasia1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if user.Username != "takmir" {
		t.Fatalf("user = %q, want takmir", user.Username)
	}

	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id != user.ID {
		t.Fatalf("parsed user id = %d, want %d", id, user.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, _, err := svc.Login("takmir", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, _, err := svc.Login("siapa", "rahasia1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.ParseToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	svc, repo := newTestAuthService(t)

	token, _, err := svc.Login("takmir", "rahasia1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	other := NewAuthService(repo, config.JWTConfig{Secret: "different", ExpiryHours: 1}, testLogger())
	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}
