package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"scet/student-analytics/internal/config"
	"scet/student-analytics/internal/handlers"
	"scet/student-analytics/internal/repositories"
	"scet/student-analytics/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository()
	log.Println("✅ Session repository initialized")

	// Initialize services
	reportStorage := services.NewReportStorageService(cfg.Report.OutputPath)
	if err := reportStorage.EnsureOutputDir(); err != nil {
		log.Fatalf("❌ Failed to create report output directory: %v", err)
	}

	heuristicService := services.NewHeuristicService()
	reportService := services.NewReportService(cfg.Report.Institution)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI (only when credentials are configured; without
	// them live analysis actions fail with a collaborator error instead of
	// the server refusing to start)
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		var err error
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	}

	if cfg.Analysis.DemoMode {
		log.Println("🧪 Demo mode: analysis uses local simulated logic (no API calls)")
	} else {
		log.Println("🤖 Live mode: analysis delegates to the Gemini API")
	}

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		geminiService,
		heuristicService,
		cfg.Analysis.DemoMode,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionRepo)
	analyzeHandler := handlers.NewAnalyzeHandler(sessionRepo, analyzerService)
	reportHandler := handlers.NewReportHandler(sessionRepo, reportService, reportStorage)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Student Analytics API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/sessions", sessionHandler.HandleCreate)
	api.Get("/sessions/:id", sessionHandler.HandleGet)
	api.Delete("/sessions/:id", sessionHandler.HandleDelete)
	api.Post("/sessions/:id/analyze/:category", analyzeHandler.HandleAnalyze)
	api.Post("/sessions/:id/report", reportHandler.HandleGenerate)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Student Performance & Retention Analytics API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/sessions",
				"GET /api/v1/sessions/:id",
				"DELETE /api/v1/sessions/:id",
				"POST /api/v1/sessions/:id/analyze/:category",
				"POST /api/v1/sessions/:id/report",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
