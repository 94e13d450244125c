package handler

import (
	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// UserHandler handles account management HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetAll handles GET /api/v1/users
// @Summary List users
// @Description List all accounts. Admin only. Password hashes are never serialized.
// @Tags users
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.User} "Users retrieved successfully"
// @Router /api/v1/users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userService.GetAll()
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list users")
		return
	}
	utils.SuccessResponse(c, "Users retrieved successfully", users)
}

// Create handles POST /api/v1/users
// @Summary Create a user
// @Description Register an account with role admin or jamaah. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.CreateUserRequest true "User"
// @Success 201 {object} utils.APIResponse{data=models.User} "User created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Username already taken"
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	user, err := h.userService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to create user")
		return
	}
	utils.CreatedResponse(c, "User berhasil ditambahkan", user)
}

// Delete handles DELETE /api/v1/users/:id
// @Summary Delete a user
// @Description Delete an account. Deleting your own account is rejected.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse "User deleted"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Failure 422 {object} utils.APIResponse "Cannot delete own account"
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	if err := h.userService.Delete(middleware.CurrentUser(c), id); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete user")
		return
	}
	utils.SuccessResponse(c, "User berhasil dihapus", nil)
}
