package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
)

// stubAuthService issues a fixed token for one known credential pair
type stubAuthService struct{}

func (s *stubAuthService) Login(username, password string) (string, *models.User, error) {
	if username == "takmir" && password == "rahasia1" {
		return "token-123", &models.User{ID: 1, Username: "takmir", Role: models.RoleAdmin}, nil
	}
	return "", nil, service.ErrInvalidCredentials
}

func (s *stubAuthService) ParseToken(tokenString string) (uint, error) {
	if tokenString == "token-123" {
		return 1, nil
	}
	return 0, service.ErrInvalidCredentials
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(&stubAuthService{}, logger.NewLogger("error", "text"))
	router := gin.New()
	router.POST("/auth/login", h.Login)
	router.POST("/auth/logout", h.Logout)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/login", `{"username":"takmir","password":"rahasia1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"token-123"`) {
		t.Fatalf("token missing from body: %s", rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/login", `{"username":"takmir","password":"salah"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginMissingFields(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/login", `{"username":"takmir"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogout(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(router, "/auth/logout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
