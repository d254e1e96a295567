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

	"github.com/graniteworks/meeting-insights/internal/adapter/handler"
	"github.com/graniteworks/meeting-insights/internal/infrastructure/cache"
	aiuse "github.com/graniteworks/meeting-insights/internal/usecase/ai"
	"github.com/graniteworks/meeting-insights/internal/usecase/summarizer"
	pkgai "github.com/graniteworks/meeting-insights/pkg/ai"
	"github.com/graniteworks/meeting-insights/pkg/config"
	pkgvalidator "github.com/graniteworks/meeting-insights/pkg/validator"
)

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
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Granite client
	log.Println("🤖 Initializing Granite client...")
	graniteClient := pkgai.NewGraniteClient(&cfg.Granite)
	if graniteClient.MockMode() {
		log.Println("⚠️  Granite running in MOCK mode (no API key needed)")
	} else {
		log.Printf("✅ Granite connected to: %s", cfg.Granite.BaseURL)
	}

	// Initialize session store
	log.Println("📦 Initializing session store...")
	sessionStore := cache.NewSessionStore(cfg.Session.TTL)

	// Initialize enrichment pipeline
	log.Println("🔍 Initializing enhancer...")
	enhancer := summarizer.NewEnhancer(summarizer.DefaultTables())
	aiService := aiuse.NewService(graniteClient, enhancer, sessionStore, logger, nil)

	// Initialize meeting handler
	log.Println("🚀 Initializing meeting handler...")
	meetingHandler := handler.NewMeetingHandler(aiService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler)
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
