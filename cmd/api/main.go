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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/minutemeet/pkg/validator"

	"github.com/johnquangdev/minutemeet/internal/adapter/handler"
	"github.com/johnquangdev/minutemeet/internal/adapter/repository"
	"github.com/johnquangdev/minutemeet/internal/infrastructure/cache"
	"github.com/johnquangdev/minutemeet/internal/infrastructure/database"
	"github.com/johnquangdev/minutemeet/internal/infrastructure/storage"
	itemuse "github.com/johnquangdev/minutemeet/internal/usecase/actionitem"
	"github.com/johnquangdev/minutemeet/internal/usecase/analysis"
	meetinguse "github.com/johnquangdev/minutemeet/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/minutemeet/pkg/ai"
	"github.com/johnquangdev/minutemeet/pkg/config"
)

// @title           MinuteMeet API
// @version         1.0
// @description     API for processing meeting transcripts into summaries, action items, health scores and insights

// @host      localhost:8080
// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache: Redis when enabled, in-memory otherwise
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		store = redisStore
	} else {
		log.Println("📦 Using in-memory cache (Redis disabled)")
		store = cache.NewMemoryStore()
	}
	defer store.Close()

	// Initialize object storage for transcript archival
	var archiver meetinguse.TranscriptArchiver
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		archiver = minioClient
	} else {
		log.Println("🗄️  Object storage disabled, transcripts are kept in the database only")
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	itemRepo := repository.NewActionItemRepository(db)

	// Initialize analysis engine with optional remote summarization
	log.Println("🤖 Initializing analysis engine...")
	var summarizer analysis.SummaryClient
	if ic := pkgai.NewInferenceClient(&cfg.Inference); ic != nil {
		log.Println("✅ Remote summarization model configured")
		summarizer = ic
	} else {
		log.Println("⚠️  No inference endpoint configured, using extractive summarization")
	}
	engine := analysis.NewEngine(summarizer, logger)

	// Initialize services
	log.Println("✨ Initializing services...")
	meetingService := meetinguse.NewService(meetingRepo, itemRepo, engine, store, archiver, cfg, logger)
	itemService := itemuse.NewService(itemRepo, meetingRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	healthHandler := handler.NewHealthHandler(db, store, cfg, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	actionItemHandler := handler.NewActionItemHandler(itemService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, healthHandler, meetingHandler, actionItemHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
