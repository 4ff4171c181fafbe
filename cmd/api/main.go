package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/cv-screener/internal/config"
	"alfredoptarigan/cv-screener/internal/handlers"
	"alfredoptarigan/cv-screener/internal/repositories"
	"alfredoptarigan/cv-screener/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.IsDevelopment() {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.LevelInfo)
	}
	log.Info("✅ Config loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	rdb, err := config.InitRedis(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	amqpConn, err := config.InitRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize rabbitmq: %v", err)
	}
	if amqpConn != nil {
		defer amqpConn.Close()
	}

	// Initialize repositories
	cvRepo := repositories.NewCVRepository(db)
	screeningRepo := repositories.NewScreeningRepository(db)
	jobRoleRepo := repositories.NewJobRoleRepository(db)
	cleanupRepo := repositories.NewCleanupRepository(db)
	log.Info("✅ Repositories initialized successfully")

	// Initialize services
	storage, err := services.NewObjectStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage: %v", err)
	}

	notifier, err := services.NewNotifier(cfg, amqpConn)
	if err != nil {
		log.Fatalf("❌ Failed to initialize notifier: %v", err)
	}

	llm, err := services.NewLLM(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
	}
	log.Infof("✅ LLM provider '%s' initialized (model %s)", cfg.LLM.Provider, cfg.LLM.Model)

	prompts := services.NewPromptBuilder()
	scorer := services.NewScorer(llm, prompts)

	var scoringClient services.ScoringClient = scorer
	if cfg.Scoring.FunctionURL != "" {
		scoringClient = services.NewHTTPScoringClient(cfg.Scoring.FunctionURL, cfg.Scoring.FunctionAPIKey, cfg.Scoring.RequestTimeout)
		log.Infof("✅ Using remote scoring function at %s", cfg.Scoring.FunctionURL)
	}

	cvService := services.NewCVService(cvRepo, cleanupRepo, storage, notifier, cfg.Storage.MaxFileSize)
	screeningService := services.NewScreeningService(
		cvRepo,
		screeningRepo,
		jobRoleRepo,
		storage,
		services.NewTextExtractor(),
		scoringClient,
		notifier,
		prompts,
		cfg.Scoring.DownloadTimeout,
	)
	jobRoleService := services.NewJobRoleService(jobRoleRepo)
	dashboardService := services.NewDashboardService(cvRepo, screeningRepo, jobRoleRepo)
	sessionService := services.NewSessionService(
		services.NewSupabaseIdentity(cfg.Auth.SupabaseURL, cfg.Auth.SupabaseAnonKey, 10*time.Second),
		services.NewRedisSessionStore(rdb),
		cfg.Auth.SessionTTL,
	)
	log.Info("✅ Services initialized successfully")

	// Initialize worker
	worker := services.NewCleanupWorker(
		cleanupRepo,
		storage,
		cfg.Worker.CleanupInterval,
		cfg.Worker.CleanupBatchSize,
		cfg.Worker.RetryMaxAttempts,
	)
	worker.Start(ctx)

	// Initialize Handlers
	sessionHandler := handlers.NewSessionHandler(sessionService)
	cvHandler := handlers.NewCVHandler(cvService, cfg.Storage.MaxFiles)
	screeningHandler := handlers.NewScreeningHandler(screeningService)
	resultHandler := handlers.NewResultHandler(screeningService, dashboardService)
	jobRoleHandler := handlers.NewJobRoleHandler(jobRoleService)
	scoringHandler := handlers.NewScoringHandler(scorer)
	log.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI CV Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Scoring.RequestTimeout + 10*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * cfg.Storage.MaxFiles,
		ErrorHandler: handlers.ErrorHandler,

		ProxyHeader:             cfg.Server.ProxyHeader,
		EnableTrustedProxyCheck: len(cfg.Server.TrustedProxies) > 0,
		TrustedProxies:          cfg.Server.TrustedProxies,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(handlers.NewMetricsBuilder().Build())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Scoring function
	functions := app.Group("/functions/v1",
		handlers.ScoringCORS(),
		handlers.NewRateLimiter(handlers.RateLimiterConfig{
			Client:    rdb,
			Limit:     cfg.Scoring.RateLimit,
			Window:    cfg.Scoring.RateWindow,
			KeyPrefix: "cv-screener:rl:screen-cvs:",
		}),
		handlers.RequireFunctionKey(cfg.Scoring.APIKey),
	)
	if cfg.Scoring.APIKey == "" {
		log.Warn("⚠️ SCORING_API_KEY is not set, /functions/v1 is only guarded by the rate limiter")
	}
	functions.Post("/screen-cvs", scoringHandler.HandleScreenCVs)

	// Routes
	api := app.Group("/api/v1", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/sessions", sessionHandler.HandleLogin)

	requireSession := handlers.RequireSession(sessionService)
	api.Delete("/sessions", requireSession, sessionHandler.HandleLogout)

	api.Post("/cvs", requireSession, cvHandler.HandleUpload)
	api.Get("/cvs", requireSession, cvHandler.HandleList)
	api.Get("/cvs/:id/download", requireSession, cvHandler.HandleDownload)
	api.Delete("/cvs/:id", requireSession, cvHandler.HandleDelete)

	api.Post("/screenings/selection", requireSession, screeningHandler.HandleFinalizeSelection)
	api.Post("/screenings", requireSession, screeningHandler.HandleScreen)
	api.Get("/screenings", requireSession, resultHandler.HandleHistory)
	api.Get("/dashboard/stats", requireSession, resultHandler.HandleStats)

	api.Get("/job-roles", requireSession, jobRoleHandler.HandleList)
	api.Post("/job-roles", requireSession, jobRoleHandler.HandleCreate)
	api.Get("/job-roles/:id", requireSession, jobRoleHandler.HandleGet)
	api.Put("/job-roles/:id", requireSession, jobRoleHandler.HandleUpdate)
	api.Delete("/job-roles/:id", requireSession, jobRoleHandler.HandleDelete)

	if cfg.Storage.Driver == "local" {
		app.Static("/files", cfg.Storage.UploadPath)
	}

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI CV Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/sessions",
				"POST /api/v1/cvs",
				"GET /api/v1/cvs",
				"POST /api/v1/screenings",
				"GET /api/v1/screenings",
				"GET /api/v1/job-roles",
				"POST /functions/v1/screen-cvs",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		worker.Stop()
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
