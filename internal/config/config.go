package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	JobWorkerCount int
	JobQueueSize   int
	SweepHourUTC   int

	ProgressCacheTTLSeconds int

	// Scheduling policy. Tunable, not fixed law.
	BaselineStrength     float64
	MaxIntervalDays      int
	MasteryThresholdDays int
	LapseGraceDays       int
	ConsecutiveFailLimit int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                    envOr("ADDR", ":8080"),
		DBPath:                  envOr("DB_PATH", "file:hifztrack.db"),
		LogLevel:                envOr("LOG_LEVEL", "INFO"),
		JobWorkerCount:          envIntOr("JOB_WORKER_COUNT", 2),
		JobQueueSize:            envIntOr("JOB_QUEUE_SIZE", 32),
		SweepHourUTC:            envIntOr("SWEEP_HOUR_UTC", 3),
		ProgressCacheTTLSeconds: envIntOr("PROGRESS_CACHE_TTL_SECONDS", 60),
		BaselineStrength:        envFloatOr("BASELINE_STRENGTH", 2.0),
		MaxIntervalDays:         envIntOr("MAX_INTERVAL_DAYS", 180),
		MasteryThresholdDays:    envIntOr("MASTERY_THRESHOLD_DAYS", 14),
		LapseGraceDays:          envIntOr("LAPSE_GRACE_DAYS", 30),
		ConsecutiveFailLimit:    envIntOr("CONSECUTIVE_FAIL_LIMIT", 3),
	}
}

// Validate checks the configuration for values that would break the engine.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.JobWorkerCount <= 0 {
		return fmt.Errorf("JOB_WORKER_COUNT must be positive")
	}
	if c.JobQueueSize <= 0 {
		return fmt.Errorf("JOB_QUEUE_SIZE must be positive")
	}
	if c.SweepHourUTC < 0 || c.SweepHourUTC > 23 {
		return fmt.Errorf("SWEEP_HOUR_UTC must be between 0 and 23")
	}
	if c.BaselineStrength <= 0 {
		return fmt.Errorf("BASELINE_STRENGTH must be positive")
	}
	if c.MaxIntervalDays < 1 {
		return fmt.Errorf("MAX_INTERVAL_DAYS must be at least 1")
	}
	if c.MasteryThresholdDays < 1 {
		return fmt.Errorf("MASTERY_THRESHOLD_DAYS must be at least 1")
	}
	if c.LapseGraceDays < 0 {
		return fmt.Errorf("LAPSE_GRACE_DAYS cannot be negative")
	}
	if c.ConsecutiveFailLimit < 1 {
		return fmt.Errorf("CONSECUTIVE_FAIL_LIMIT must be at least 1")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}
