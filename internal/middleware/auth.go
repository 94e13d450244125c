package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/utils"
)

// Context key under which the authenticated user is stored
const ContextUserKey = "currentUser"

// AuthRequired validates the bearer token and attaches the acting user to
// the request context. Identity is resolved once here; handlers never
// touch the token themselves.
func AuthRequired(authService service.AuthService, userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.UnauthorizedResponse(c, "Token tidak ditemukan")
			c.Abort()
			return
		}

		userID, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.UnauthorizedResponse(c, "Token tidak valid")
			c.Abort()
			return
		}

		user, err := userService.GetByID(userID)
		if err != nil {
			utils.UnauthorizedResponse(c, "Token tidak valid")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// AdminOnly rejects requests whose acting user lacks the admin capability.
// Must run after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			utils.ForbiddenResponse(c, "Hanya admin yang dapat melakukan aksi ini")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
