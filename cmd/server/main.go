package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/cyberquest/internal/api"
	"github.com/vytor/cyberquest/internal/catalog"
	"github.com/vytor/cyberquest/internal/config"
	"github.com/vytor/cyberquest/internal/db"
	"github.com/vytor/cyberquest/internal/jobs"
	"github.com/vytor/cyberquest/internal/logger"
	"github.com/vytor/cyberquest/internal/password"
	"github.com/vytor/cyberquest/internal/repository/sqlite"
	"github.com/vytor/cyberquest/internal/services"
	"github.com/vytor/cyberquest/internal/worker"
)

const sweepInterval = time.Minute

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("CyberQuest Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("quiz_dir=%s", cfg.QuizDir)
	log.Debug("password_min_length=%d", cfg.PasswordMinLength)
	log.Debug("auto_advance=%v", cfg.AutoAdvance())
	log.Debug("session_ttl=%v", cfg.SessionTTL())
	log.Debug("summary_worker_count=%d", cfg.SummaryWorkerCount)
	log.Debug("summary_queue_size=%d", cfg.SummaryQueueSize)

	ctx, cancel := context.WithCancel(logger.NewContext(context.Background(), log))
	defer cancel()

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	quizzes, err := catalog.Load(ctx, cfg.QuizDir)
	if err != nil {
		log.Error("failed to load quizzes: %v", err)
		os.Exit(1)
	}

	scorerCfg := password.DefaultConfig()
	scorerCfg.MinLength = cfg.PasswordMinLength
	if scorerCfg.LongLength <= scorerCfg.MinLength {
		scorerCfg.LongLength = scorerCfg.MinLength + 4
		scorerCfg.VeryLongLength = scorerCfg.MinLength + 8
	}
	scorer, err := password.NewScorer(scorerCfg)
	if err != nil {
		log.Error("failed to configure password scorer: %v", err)
		os.Exit(1)
	}

	// Repositories and services
	kvRepo := sqlite.NewKVRepository(database.DB)
	summaryRepo := sqlite.NewSummaryRepository(database.DB)
	summaryService := services.NewSummaryService(kvRepo, summaryRepo)

	summaryPool := worker.NewPool("summaries", cfg.SummaryWorkerCount, cfg.SummaryQueueSize)
	summaryPool.Start(ctx)

	playService := services.NewPlayService(quizzes, jobs.NewWorkerQueue(summaryPool, summaryService), services.PlayConfig{
		AutoAdvance: cfg.AutoAdvance(),
		TTL:         cfg.SessionTTL(),
	})

	srv := &api.Server{
		Catalog:         quizzes,
		PlayService:     playService,
		SummaryService:  summaryService,
		PasswordService: services.NewPasswordService(scorer),
		DB:              database,
	}

	// Expire idle sessions
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				playService.Sweep(ctx, now)
			}
		}
	}()

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Sessions first so no auto-advance enqueues after the pool closes.
	playService.Shutdown(ctx)
	log.Debug("draining summary pool")
	summaryPool.Stop()
	cancel()

	log.Info("===========================================")
	log.Info("CyberQuest Server Stopped")
	log.Info("===========================================")
}
