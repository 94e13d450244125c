package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the user it belongs to
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=LoginResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.WithField("username", req.Username).Warn("Failed login attempt")
			utils.UnauthorizedResponse(c, err.Error())
			return
		}
		utils.ErrorResponse(c, err, "Failed to log in")
		return
	}

	utils.SuccessResponse(c, "Login berhasil", LoginResponse{Token: token, User: user})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Tokens are stateless; logout only acknowledges so clients can drop theirs
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse "Logout acknowledged"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if user := middleware.CurrentUser(c); user != nil {
		h.logger.WithField("username", user.Username).Info("User logged out")
	}
	utils.SuccessResponse(c, "Logout berhasil", nil)
}
