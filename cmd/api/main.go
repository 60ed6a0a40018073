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

	pkgvalidator "github.com/interview-coach-team/interview-coach/pkg/validator"

	"github.com/interview-coach-team/interview-coach/internal/adapter/handler"
	"github.com/interview-coach-team/interview-coach/internal/adapter/repository"
	"github.com/interview-coach-team/interview-coach/internal/infrastructure/cache"
	"github.com/interview-coach-team/interview-coach/internal/infrastructure/database"
	"github.com/interview-coach-team/interview-coach/internal/infrastructure/external/transcription"
	"github.com/interview-coach-team/interview-coach/internal/infrastructure/storage"
	attemptUsecase "github.com/interview-coach-team/interview-coach/internal/usecase/attempt"
	"github.com/interview-coach-team/interview-coach/internal/usecase/feedback"
	questionUsecase "github.com/interview-coach-team/interview-coach/internal/usecase/question"
	"github.com/interview-coach-team/interview-coach/internal/usecase/scoring"
	sessionUsecase "github.com/interview-coach-team/interview-coach/internal/usecase/session"
	pkgai "github.com/interview-coach-team/interview-coach/pkg/ai"
	"github.com/interview-coach-team/interview-coach/pkg/config"
)

// @title           Interview Coach API
// @version         1.0
// @description     Scores spoken interview answers across six dimensions and generates coaching feedback.

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /v1

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
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
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

	// Apply SQL migrations on boot only when explicitly enabled in config.
	// CI/CD pipelines usually run sql-migrate as a separate step instead.
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db, "migrations"); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping boot migrations; run sql-migrate (or the migrate script) separately")
	}

	// Structured logger for services and handlers
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the embedding vector cache. Redis is preferred; a process
	// restart with the in-memory fallback just re-embeds on first use.
	var vectorCache scoring.VectorCache
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		vectorCache = cache.NewRedisVectorCache(redisClient, cfg.Embeddings.CacheTTL, logger)
	} else {
		log.Println("⚠️  Redis disabled; using in-process vector cache")
		vectorCache = cache.NewMemoryVectorCache(cfg.Embeddings.CacheTTL)
	}

	// Initialize object storage for submitted audio clips
	log.Println("📦 Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	sessionRepo := repository.NewSessionRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	// Initialize the scoring pipeline
	log.Println("🤖 Initializing scoring pipeline...")
	lexicons, err := scoring.LoadLexicons(cfg.Scoring.LexiconPath)
	if err != nil {
		log.Fatalf("Failed to load scoring lexicons: %v", err)
	}
	embeddingsClient := pkgai.NewEmbeddingsClient(cfg, logger)
	extractor := scoring.NewExtractor(lexicons, logger)
	semanticScorer := scoring.NewSemanticScorer(embeddingsClient, vectorCache, logger)
	structureAnalyzer := scoring.NewStructureAnalyzer(lexicons)
	scoringService := scoring.NewScoringService(extractor, semanticScorer, structureAnalyzer, logger)

	// Initialize feedback generation with rotating provider credentials
	log.Println("💬 Initializing feedback generation...")
	geminiClient := pkgai.NewGeminiClient(cfg, logger)
	credentialPool, err := feedback.NewCredentialPool(cfg.GeminiCredentials(), cfg.Gemini.Cooldown, cfg.Gemini.QuotaCooldown)
	if err != nil {
		log.Fatalf("Failed to initialize credential pool: %v", err)
	}
	feedbackService := feedback.NewFeedbackService(geminiClient, credentialPool, cfg.Gemini.RequestTimeout, logger)
	log.Printf("✅ Feedback generation ready with %d credential(s)", credentialPool.Size())

	// Initialize transcription when a key is configured
	var transcriber attemptUsecase.Transcriber
	if cfg.Assembly.APIKey != "" {
		log.Println("🎙️  Initializing AssemblyAI transcription...")
		transcriber = transcription.NewClient(&cfg.Assembly, logger)
	} else {
		log.Println("⚠️  ASSEMBLYAI_API_KEY not set; audio clips will not be transcribed")
	}

	// Initialize usecase services
	log.Println("✨ Initializing services...")
	sessionService := sessionUsecase.NewSessionService(sessionRepo, minioClient, logger)
	questionService := questionUsecase.NewQuestionService(questionRepo)
	attemptService := attemptUsecase.NewAttemptService(
		attemptRepo,
		sessionRepo,
		questionRepo,
		scoringService,
		feedbackService,
		transcriber,
		minioClient,
		cfg.Storage.PresignExpiry,
		logger,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	sessionHandler := handler.NewSessionHandler(sessionService, logger)
	questionHandler := handler.NewQuestionHandler(questionService, logger)
	attemptHandler := handler.NewAttemptHandler(attemptService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, sessionHandler, questionHandler, attemptHandler, credentialPool)
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
