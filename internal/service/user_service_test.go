package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
)

func newTestUserService() (UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeAudit{}, testLogger())
	return svc, repo
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, repo := newTestUserService()

	user, err := svc.Create(testAdmin(), &CreateUserRequest{
		Username: "warga1",
		Password: "rahasia1",
		FullName: "Bu Warga",
		Role:     models.RoleJamaah,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Password == "rahasia1" {
		t.Fatal("password stored in plaintext")
	}

	stored := repo.users[user.ID]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("rahasia1")); err != nil {
		t.Fatalf("stored password does not verify: %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newTestUserService()

	cases := []struct {
		name string
		req  CreateUserRequest
	}{
		{"blank username", CreateUserRequest{Username: " ", Password: "rahasia1", FullName: "X", Role: models.RoleJamaah}},
		{"short password", CreateUserRequest{Username: "warga2", Password: "abc", FullName: "X", Role: models.RoleJamaah}},
		{"bad role", CreateUserRequest{Username: "warga3", Password: "rahasia1", FullName: "X", Role: "superadmin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(testAdmin(), &tc.req); !apperrors.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, _ := newTestUserService()

	req := CreateUserRequest{Username: "warga1", Password: "rahasia1", FullName: "Bu Warga", Role: models.RoleJamaah}
	if _, err := svc.Create(testAdmin(), &req); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(testAdmin(), &req); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate username, got %v", err)
	}
}

func TestDeleteUserSelfRejected(t *testing.T) {
	svc, repo := newTestUserService()

	admin := testAdmin()
	repo.users[admin.ID] = admin
	repo.nextID = admin.ID

	if err := svc.Delete(admin, admin.ID); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error on self-delete, got %v", err)
	}
	if _, ok := repo.users[admin.ID]; !ok {
		t.Fatal("account must survive the rejected self-delete")
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	svc, _ := newTestUserService()

	if err := svc.Delete(testAdmin(), 99); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
