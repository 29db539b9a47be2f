package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nadir/hifztrack/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                    ":8080",
		DBPath:                  "test.db",
		LogLevel:                "INFO",
		JobWorkerCount:          2,
		JobQueueSize:            32,
		SweepHourUTC:            3,
		ProgressCacheTTLSeconds: 60,
		BaselineStrength:        2.0,
		MaxIntervalDays:         180,
		MasteryThresholdDays:    14,
		LapseGraceDays:          30,
		ConsecutiveFailLimit:    3,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidWorkerAndQueue(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero workers",
			mutate:        func(c *config.Config) { c.JobWorkerCount = 0 },
			expectedError: "JOB_WORKER_COUNT",
		},
		{
			name:          "negative workers",
			mutate:        func(c *config.Config) { c.JobWorkerCount = -1 },
			expectedError: "JOB_WORKER_COUNT",
		},
		{
			name:          "zero queue",
			mutate:        func(c *config.Config) { c.JobQueueSize = 0 },
			expectedError: "JOB_QUEUE_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_InvalidSweepHour(t *testing.T) {
	tests := []struct {
		name string
		hour int
	}{
		{name: "negative hour", hour: -1},
		{name: "hour too high", hour: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.SweepHourUTC = tt.hour

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "SWEEP_HOUR_UTC")
		})
	}
}

func TestValidate_InvalidPolicyValues(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero baseline strength",
			mutate:        func(c *config.Config) { c.BaselineStrength = 0 },
			expectedError: "BASELINE_STRENGTH",
		},
		{
			name:          "zero max interval",
			mutate:        func(c *config.Config) { c.MaxIntervalDays = 0 },
			expectedError: "MAX_INTERVAL_DAYS",
		},
		{
			name:          "zero mastery threshold",
			mutate:        func(c *config.Config) { c.MasteryThresholdDays = 0 },
			expectedError: "MASTERY_THRESHOLD_DAYS",
		},
		{
			name:          "negative grace",
			mutate:        func(c *config.Config) { c.LapseGraceDays = -1 },
			expectedError: "LAPSE_GRACE_DAYS",
		},
		{
			name:          "zero fail limit",
			mutate:        func(c *config.Config) { c.ConsecutiveFailLimit = 0 },
			expectedError: "CONSECUTIVE_FAIL_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "SWEEP_HOUR_UTC", "BASELINE_STRENGTH"} {
		original := os.Getenv(key)
		os.Unsetenv(key)
		defer func(k, v string) {
			if v != "" {
				os.Setenv(k, v)
			}
		}(key, original)
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 3, cfg.SweepHourUTC)
	assert.Equal(t, 2.0, cfg.BaselineStrength)
	assert.Equal(t, 180, cfg.MaxIntervalDays)
	assert.Equal(t, 14, cfg.MasteryThresholdDays)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	originalAddr := os.Getenv("ADDR")
	originalGrace := os.Getenv("LAPSE_GRACE_DAYS")

	defer func() {
		if originalAddr != "" {
			os.Setenv("ADDR", originalAddr)
		} else {
			os.Unsetenv("ADDR")
		}
		if originalGrace != "" {
			os.Setenv("LAPSE_GRACE_DAYS", originalGrace)
		} else {
			os.Unsetenv("LAPSE_GRACE_DAYS")
		}
	}()

	os.Setenv("ADDR", ":9090")
	os.Setenv("LAPSE_GRACE_DAYS", "45")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 45, cfg.LapseGraceDays)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	original := os.Getenv("MAX_INTERVAL_DAYS")
	defer func() {
		if original != "" {
			os.Setenv("MAX_INTERVAL_DAYS", original)
		} else {
			os.Unsetenv("MAX_INTERVAL_DAYS")
		}
	}()

	os.Setenv("MAX_INTERVAL_DAYS", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, 180, cfg.MaxIntervalDays, "garbage values fall back to the default")
}
