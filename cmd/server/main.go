package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nadir/hifztrack/internal/api"
	"github.com/nadir/hifztrack/internal/catalog"
	"github.com/nadir/hifztrack/internal/config"
	"github.com/nadir/hifztrack/internal/db"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/repository/sqlite"
	"github.com/nadir/hifztrack/internal/scheduler"
	"github.com/nadir/hifztrack/internal/services"
	"github.com/nadir/hifztrack/internal/sweep"
	"github.com/nadir/hifztrack/internal/worker"
	"github.com/nadir/hifztrack/internal/workflow"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("HifzTrack Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("sweep_hour_utc=%d", cfg.SweepHourUTC)
	log.Debug("mastery_threshold_days=%d", cfg.MasteryThresholdDays)
	log.Debug("lapse_grace_days=%d", cfg.LapseGraceDays)
	log.Debug("max_interval_days=%d", cfg.MaxIntervalDays)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	cat := catalog.New()
	log.Info("catalog loaded: %d units", cat.Len())

	recordRepo := sqlite.NewRecordRepository(database.DB)
	eventRepo := sqlite.NewReviewEventRepository(database.DB)
	verificationRepo := sqlite.NewVerificationRepository(database.DB)
	enrollmentRepo := sqlite.NewEnrollmentRepository(database.DB)

	policy := scheduler.Default()
	policy.BaselineStrength = cfg.BaselineStrength
	policy.MaxIntervalDays = cfg.MaxIntervalDays

	rules := workflow.DefaultRules()
	rules.MasteryThresholdDays = cfg.MasteryThresholdDays
	rules.ConsecutiveFailLimit = cfg.ConsecutiveFailLimit
	rules.LapseGraceDays = cfg.LapseGraceDays
	rules.BaselineStrength = cfg.BaselineStrength

	progressService := services.NewProgressService(recordRepo, eventRepo, enrollmentRepo, cat,
		time.Duration(cfg.ProgressCacheTTLSeconds)*time.Second)
	reviewService := services.NewReviewService(recordRepo, eventRepo, policy, rules, progressService)
	verificationService := services.NewVerificationService(recordRepo, verificationRepo, rules, progressService)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, recordRepo, cat, progressService)
	sweepService := services.NewSweepService(recordRepo, rules, progressService)

	jobPool := worker.NewPool(cfg.JobWorkerCount, cfg.JobQueueSize)

	srv := &api.Server{
		Catalog:             cat,
		ReviewService:       reviewService,
		VerificationService: verificationService,
		EnrollmentService:   enrollmentService,
		ProgressService:     progressService,
		SweepService:        sweepService,
		JobPool:             jobPool,
	}

	ctx, cancel := context.WithCancel(context.Background())
	jobPool.Start(ctx)

	sweeper := sweep.New(jobPool, sweepService, cfg.SweepHourUTC)
	if err := sweeper.Start(); err != nil {
		log.Error("failed to start sweep scheduler: %v", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping sweep scheduler")
	sweeper.Stop()

	log.Debug("stopping workers")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	jobPool.Stop()

	log.Info("===========================================")
	log.Info("HifzTrack Server Stopped")
	log.Info("===========================================")
}
