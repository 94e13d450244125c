package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	userService service.UserService,
	kasService service.KasService,
	eventService service.EventService,
	familyService service.FamilyService,
	pendudukService service.PendudukService,
	infoService service.InfoService,
	dashboardService service.DashboardService,
	auditService service.AuditService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	userHandler := NewUserHandler(userService, logger)
	kasHandler := NewKasHandler(kasService, logger)
	eventHandler := NewEventHandler(eventService, logger)
	familyHandler := NewFamilyHandler(familyService, logger)
	pendudukHandler := NewPendudukHandler(pendudukService, logger)
	infoHandler := NewInfoHandler(infoService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	auditHandler := NewAuditHandler(auditService, logger)

	authRequired := middleware.AuthRequired(authService, userService)
	adminOnly := middleware.AdminOnly()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authRequired, authHandler.Logout)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard", authRequired)
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
		}

		// Kas routes
		kas := v1.Group("/kas", authRequired)
		{
			kas.GET("", kasHandler.List)
			kas.GET("/export", adminOnly, kasHandler.Export)
			kas.POST("", adminOnly, kasHandler.Create)
			kas.PUT("/:id", adminOnly, kasHandler.Update)
			kas.DELETE("/:id", adminOnly, kasHandler.Delete)
		}

		// Event routes
		events := v1.Group("/events", authRequired)
		{
			events.GET("", eventHandler.GetEvents)
			events.GET("/:id", eventHandler.GetEventDetail)
			events.GET("/:id/report", eventHandler.GetEventReport)
			events.POST("", adminOnly, eventHandler.CreateEvent)
			events.PUT("/:id", adminOnly, eventHandler.UpdateEvent)
			events.DELETE("/:id", adminOnly, eventHandler.DeleteEvent)
			events.POST("/:id/complete", adminOnly, eventHandler.CompleteEvent)

			// Event ledger
			events.POST("/:id/transactions", adminOnly, eventHandler.AddTransaction)
			events.PUT("/:id/transactions/:transId", adminOnly, eventHandler.UpdateTransaction)
			events.DELETE("/:id/transactions/:transId", adminOnly, eventHandler.DeleteTransaction)

			// Distribution recipients
			events.GET("/:id/recipients", eventHandler.GetRecipients)
			events.POST("/:id/recipients", adminOnly, eventHandler.AddRecipient)
			events.PUT("/:id/recipients/:recipientId", adminOnly, eventHandler.UpdateRecipient)
			events.DELETE("/:id/recipients/:recipientId", adminOnly, eventHandler.DeleteRecipient)

			// Committee members
			events.GET("/:id/panitia", eventHandler.GetPanitia)
			events.POST("/:id/panitia", adminOnly, eventHandler.AddPanitia)
			events.PUT("/:id/panitia/:panitiaId", adminOnly, eventHandler.UpdatePanitia)
			events.DELETE("/:id/panitia/:panitiaId", adminOnly, eventHandler.DeletePanitia)
		}

		// Family routes
		families := v1.Group("/families", authRequired)
		{
			families.GET("", familyHandler.GetFamilies)
			families.GET("/:id", familyHandler.GetFamily)
			families.POST("", adminOnly, familyHandler.CreateFamily)
			families.PUT("/:id", adminOnly, familyHandler.UpdateFamily)
			families.DELETE("/:id", adminOnly, familyHandler.DeleteFamily)

			families.GET("/:id/members", familyHandler.GetMembers)
			families.POST("/:id/members", adminOnly, familyHandler.AddMember)
			families.PUT("/:id/members/:memberId", adminOnly, familyHandler.UpdateMember)
			families.DELETE("/:id/members/:memberId", adminOnly, familyHandler.DeleteMember)
		}

		// Penduduk khusus routes
		pendudukKhusus := v1.Group("/penduduk-khusus", authRequired)
		{
			pendudukKhusus.GET("", pendudukHandler.GetAll)
			pendudukKhusus.POST("", adminOnly, pendudukHandler.Create)
			pendudukKhusus.PUT("/:id", adminOnly, pendudukHandler.Update)
			pendudukKhusus.DELETE("/:id", adminOnly, pendudukHandler.Delete)
		}

		// Resident search across registries
		penduduk := v1.Group("/penduduk", authRequired)
		{
			penduduk.GET("/search", pendudukHandler.Search)
		}

		// Public announcement routes
		info := v1.Group("/info")
		{
			info.GET("", infoHandler.GetAll)
			info.POST("", authRequired, adminOnly, infoHandler.Create)
			info.PUT("/:id", authRequired, adminOnly, infoHandler.Update)
			info.DELETE("/:id", authRequired, adminOnly, infoHandler.Delete)
		}

		// User management routes
		users := v1.Group("/users", authRequired, adminOnly)
		{
			users.GET("", userHandler.GetAll)
			users.POST("", userHandler.Create)
			users.DELETE("/:id", userHandler.Delete)
		}

		// Audit trail routes
		audit := v1.Group("/audit", authRequired, adminOnly)
		{
			audit.GET("", auditHandler.GetLogs)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "HaloDKM Backend Service",
	})
}
