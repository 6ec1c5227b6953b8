package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mycontacts/internal/config"
	"mycontacts/internal/handler"
	"mycontacts/internal/logger"
	"mycontacts/internal/middleware"
	"mycontacts/internal/repository"
	"mycontacts/internal/service"
	"mycontacts/internal/utils"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		// Missing signing secret or database settings: fatal, not recoverable.
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Development)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// --- Database Connection ---
	db := config.NewDatabase(zl)
	dbPool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := config.AutoMigrate(context.Background(), dbPool); err != nil {
		zl.Fatal("failed to auto-migrate database", zap.Error(err))
	}

	// --- Wiring ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repository.NewUserRepository(dbPool)
	contactRepo := repository.NewContactRepository(dbPool)

	authService := service.NewAuthService(userRepo, jwtUtil, zl)
	contactService := service.NewContactService(contactRepo, zl)

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)

	// --- Router ---
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zl))
	router.Use(middleware.ErrorHandler(zl))
	router.Use(middleware.CORS())

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	contactHandler.RegisterContactRoutes(apiGroup)

	// Root index listing the public endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Contacts Manager API is running!",
			"endpoints": gin.H{
				"getAllContacts": "GET /api/contacts",
				"createContact":  "POST /api/contacts",
				"getContact":     "GET /api/contacts/:id",
				"updateContact":  "PUT /api/contacts/:id",
				"deleteContact":  "DELETE /api/contacts/:id",
			},
		})
	})

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exiting")
}
