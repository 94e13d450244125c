package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"halodkm-be-svc/docs"
	"halodkm-be-svc/internal/config"
	"halodkm-be-svc/internal/database"
	"halodkm-be-svc/internal/handler"
	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/internal/scheduler"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
)

// @title HaloDKM Backend Service API
// @version 1.0
// @description RESTful API for mosque and neighborhood administration
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "HaloDKM Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for mosque and neighborhood administration"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting HaloDKM Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	kasRepo := repository.NewKasRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	familyRepo := repository.NewFamilyRepository(db.DB)
	pendudukRepo := repository.NewPendudukRepository(db.DB)
	infoRepo := repository.NewInfoRepository(db.DB)
	auditRepo := repository.NewAuditRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize services
	auditService := service.NewAuditService(auditRepo, appLogger)
	authService := service.NewAuthService(userRepo, cfg.JWT, appLogger)
	userService := service.NewUserService(userRepo, auditService, appLogger)
	kasService := service.NewKasService(kasRepo, auditService, appLogger)
	eventService := service.NewEventService(eventRepo, auditService, appLogger)
	familyService := service.NewFamilyService(familyRepo, auditService, appLogger)
	pendudukService := service.NewPendudukService(pendudukRepo, familyRepo, auditService, appLogger)
	infoService := service.NewInfoService(infoRepo, auditService, appLogger)
	dashboardService := service.NewDashboardService(kasRepo, familyRepo, appLogger)
	recapService := service.NewRecapService(kasRepo, infoRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, authService, userService, kasService, eventService, familyService, pendudukService, infoService, dashboardService, auditService, appLogger)

	// Start monthly recap scheduler
	var recapScheduler *scheduler.RecapScheduler
	if cfg.Scheduler.RecapEnabled {
		recapScheduler = scheduler.NewRecapScheduler(recapService, schedulerLogRepo, appLogger, cfg.Scheduler.RecapCronExpression)
		if err := recapScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start recap scheduler")
		}
	} else {
		appLogger.Info("Recap scheduler disabled by configuration")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if recapScheduler != nil {
		recapScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
