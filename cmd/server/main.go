package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"lawpick-backend/config"
	"lawpick-backend/handlers"
	"lawpick-backend/llm"
	"lawpick-backend/logger"
	"lawpick-backend/metrics"
	"lawpick-backend/repository"
	"lawpick-backend/service"
	"lawpick-backend/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	gin.SetMode(cfg.GinMode)
	ctx := context.Background()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	// Gemini is optional; without it every result comes from the rules
	var generator llm.Generator
	if cfg.AIConfigured() {
		gemini, err := llm.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			appLogger.Warn("Gemini unavailable, serving rule-based results only", logger.Err(err))
		} else {
			defer gemini.Close()
			generator = gemini
			appLogger.Info("Gemini client initialized", logger.String("model", cfg.GeminiModel))
		}
	} else {
		appLogger.Info("Gemini disabled, serving rule-based results only")
	}

	letterOpts := []service.LetterServiceOption{
		service.LetterWithTimeout(cfg.AITimeout),
		service.LetterWithLogger(appLogger),
		service.LetterWithMetrics(m),
	}
	if cfg.ArchiveEnabled() {
		db, err := initPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			appLogger.Error("Failed to initialize Postgres", logger.Err(err))
			os.Exit(1)
		}
		defer db.Close()

		docs, err := storage.New(ctx, storage.ConfigFrom(cfg))
		if err != nil {
			appLogger.Error("Failed to initialize storage", logger.Err(err))
			os.Exit(1)
		}
		letterOpts = append(letterOpts, service.LetterWithArchive(docs, repository.NewLetterRepository(db)))
		appLogger.Info("Letter archive enabled", logger.String("storage", cfg.StorageType))
	}
	if generator != nil {
		letterOpts = append(letterOpts, service.LetterWithGenerator(generator))
	}

	analysisOpts := []service.AnalysisServiceOption{
		service.AnalysisWithTimeout(cfg.AITimeout),
		service.AnalysisWithLogger(appLogger),
		service.AnalysisWithMetrics(m),
	}
	diagnosisOpts := []service.DiagnosisServiceOption{
		service.DiagnosisWithTimeout(cfg.AITimeout),
		service.DiagnosisWithLogger(appLogger),
		service.DiagnosisWithMetrics(m),
	}
	chatOpts := []service.ChatServiceOption{
		service.ChatWithTimeout(cfg.AITimeout),
		service.ChatWithLogger(appLogger),
		service.ChatWithMetrics(m),
	}
	if generator != nil {
		analysisOpts = append(analysisOpts, service.AnalysisWithGenerator(generator))
		diagnosisOpts = append(diagnosisOpts, service.DiagnosisWithGenerator(generator))
		chatOpts = append(chatOpts, service.ChatWithGenerator(generator))
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:           appLogger,
		Metrics:          m,
		AnalysisService:  service.NewAnalysisService(analysisOpts...),
		LetterService:    service.NewLetterService(letterOpts...),
		DiagnosisService: service.NewDiagnosisService(diagnosisOpts...),
		ChatService:      service.NewChatService(chatOpts...),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Server starting", logger.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Server failed", logger.Err(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", logger.Err(err))
	}
	appLogger.Info("Server stopped")
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := repository.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
