// cmd/server/main.go
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
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"linkfolio/internal/auth"
	"linkfolio/internal/cache"
	"linkfolio/internal/config"
	"linkfolio/internal/database"
	"linkfolio/internal/handler"
	postgresRepo "linkfolio/internal/repository/postgres"
	"linkfolio/internal/service"
	customLogger "linkfolio/pkg/logger"
)

// gormWriter wraps our custom logger to implement gorm's logger.Writer interface
type gormWriter struct {
	logger *customLogger.Logger
}

// Printf implements the logger.Writer interface
func (w *gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Info(fmt.Sprintf(format, args...))
}

func main() {
	// Load environment variables from .env file (development only)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize structured logger
	appLogger := customLogger.NewLogger()
	appLogger.Info("Starting linkfolio service")

	// Load application configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatal("Failed to load configuration", "error", err)
	}

	// Initialize database connection
	db, err := initDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", "error", err)
	}

	// Apply schema migrations
	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Fatal("Failed to get database instance", "error", err)
	}
	if err := database.RunMigrations(sqlDB); err != nil {
		appLogger.Fatal("Failed to run migrations", "error", err)
	}
	appLogger.Info("Database migrations applied")

	// Initialize Redis cache; the service degrades gracefully without it
	redisCache, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		appLogger.Warn("Failed to initialize Redis cache, continuing without cache", "error", err)
		redisCache = nil
	}

	// Initialize repository layer
	linkRepo := postgresRepo.NewLinkRepository(db)
	categoryRepo := postgresRepo.NewCategoryRepository(db)
	clickRepo := postgresRepo.NewClickRepository(db)
	profileRepo := postgresRepo.NewProfileRepository(db)

	// Initialize service layer with dependency injection
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	linkService := service.NewLinkService(linkRepo, categoryRepo, redisCache, cfg, appLogger)
	analyticsService := service.NewAnalyticsService(clickRepo, linkRepo, cfg, appLogger)
	profileService := service.NewProfileService(profileRepo, linkService, tokens, cfg, appLogger)

	// Initialize HTTP handlers
	linkHandler := handler.NewLinkHandler(linkService, analyticsService, appLogger)
	publicHandler := handler.NewPublicHandler(profileService, analyticsService, cfg.BaseURL, appLogger)
	profileHandler := handler.NewProfileHandler(profileService, appLogger)

	// Setup HTTP router with middleware
	router := setupRouter(linkHandler, publicHandler, profileHandler, tokens, cfg, appLogger)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		appLogger.Info("Server starting", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with 30 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
	}

	// Close Redis connection
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			appLogger.Error("Error closing Redis connection", "error", err)
		}
	}

	appLogger.Info("Server exited successfully")
}

// initDatabase initializes the PostgreSQL database connection with connection pooling
func initDatabase(cfg *config.Config, log *customLogger.Logger) (*gorm.DB, error) {
	writer := &gormWriter{logger: log}

	gormLogger := gormlogger.New(
		writer,
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	// Connect to PostgreSQL with retry logic
	var db *gorm.DB
	var err error

	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:                 gormLogger,
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
			TranslateError:         true,
		})

		if err == nil {
			break
		}

		log.Warn("Failed to connect to database, retrying...", "attempt", i+1, "error", err)
		time.Sleep(5 * time.Second)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Verify database connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database connection established successfully")
	return db, nil
}

// setupRouter configures the Gin router with middleware and routes
func setupRouter(
	linkHandler *handler.LinkHandler,
	publicHandler *handler.PublicHandler,
	profileHandler *handler.ProfileHandler,
	tokens *auth.TokenService,
	cfg *config.Config,
	log *customLogger.Logger,
) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Apply global middleware
	router.Use(gin.Recovery()) // Panic recovery
	router.Use(handler.LoggerMiddleware(log))
	router.Use(handler.CORSMiddleware(cfg))
	router.Use(handler.SecurityHeadersMiddleware())
	router.Use(handler.NewRateLimiter(cfg.RateLimitPerMinute).Middleware())

	// Health check endpoint (no authentication required)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "linkfolio",
			"version": "1.0.0",
		})
	})

	// Public surface: profile pages, click tracking, contact, QR codes
	public := router.Group("/p")
	{
		public.GET("/:slug", publicHandler.GetProfile)
		public.GET("/:slug/qrcode", publicHandler.GetQRCode)
		public.POST("/:slug/contact", publicHandler.SubmitContact)
		public.POST("/click/:linkId", publicHandler.TrackClick)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Authentication
		v1.POST("/auth/register", profileHandler.Register)
		v1.POST("/auth/login", profileHandler.Login)

		// Authenticated management surface
		authed := v1.Group("")
		authed.Use(handler.AuthMiddleware(tokens))
		{
			authed.GET("/profile", profileHandler.GetProfile)
			authed.PATCH("/profile", profileHandler.UpdateProfile)
			authed.GET("/messages", profileHandler.ListMessages)

			authed.GET("/categories", linkHandler.ListCategories)
			authed.POST("/categories", linkHandler.CreateCategory)
			authed.PUT("/categories/reorder", linkHandler.ReorderCategories)
			authed.PATCH("/categories/:id", linkHandler.UpdateCategory)
			authed.DELETE("/categories/:id", linkHandler.DeleteCategory)

			authed.GET("/links", linkHandler.ListLinks)
			authed.POST("/links", linkHandler.CreateLink)
			authed.PUT("/links/reorder", linkHandler.ReorderLinks)
			authed.PATCH("/links/:id", linkHandler.UpdateLink)
			authed.DELETE("/links/:id", linkHandler.DeleteLink)
			authed.GET("/links/:id/analytics", linkHandler.GetAnalytics)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "endpoint not found",
		})
	})

	return router
}
