package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vytor/cyberquest/internal/logger"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 64
	maxAutoAdvanceMS  = 60000
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	QuizDir            string
	PasswordMinLength  int
	AutoAdvanceMS      int
	SessionTTLMinutes  int
	SummaryWorkerCount int
	SummaryQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or malformed.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:cyberquest.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		QuizDir:            os.Getenv("QUIZ_DIR"),
		PasswordMinLength:  envIntOr("PASSWORD_MIN_LENGTH", minPasswordLength),
		AutoAdvanceMS:      envIntOr("AUTO_ADVANCE_MS", 0),
		SessionTTLMinutes:  envIntOr("SESSION_TTL_MINUTES", 60),
		SummaryWorkerCount: envIntOr("SUMMARY_WORKER_COUNT", 1),
		SummaryQueueSize:   envIntOr("SUMMARY_QUEUE_SIZE", 32),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.QuizDir != "" {
		if fi, err := os.Stat(c.QuizDir); err != nil {
			errs = append(errs, fmt.Errorf("QUIZ_DIR: %w", err))
		} else if !fi.IsDir() {
			errs = append(errs, fmt.Errorf("QUIZ_DIR %q is not a directory", c.QuizDir))
		}
	}
	if c.PasswordMinLength < minPasswordLength || c.PasswordMinLength > maxPasswordLength {
		errs = append(errs, fmt.Errorf("PASSWORD_MIN_LENGTH must be between %d and %d, got %d",
			minPasswordLength, maxPasswordLength, c.PasswordMinLength))
	}
	if c.AutoAdvanceMS < 0 || c.AutoAdvanceMS > maxAutoAdvanceMS {
		errs = append(errs, fmt.Errorf("AUTO_ADVANCE_MS must be between 0 and %d, got %d", maxAutoAdvanceMS, c.AutoAdvanceMS))
	}
	if c.SessionTTLMinutes < 1 {
		errs = append(errs, fmt.Errorf("SESSION_TTL_MINUTES must be at least 1, got %d", c.SessionTTLMinutes))
	}
	if c.SummaryWorkerCount < 1 {
		errs = append(errs, fmt.Errorf("SUMMARY_WORKER_COUNT must be at least 1, got %d", c.SummaryWorkerCount))
	}
	if c.SummaryQueueSize < 1 {
		errs = append(errs, fmt.Errorf("SUMMARY_QUEUE_SIZE must be at least 1, got %d", c.SummaryQueueSize))
	}
	return errors.Join(errs...)
}

// AutoAdvance is the configured auto-advance delay; zero disables it.
func (c Config) AutoAdvance() time.Duration {
	return time.Duration(c.AutoAdvanceMS) * time.Millisecond
}

// SessionTTL is how long an idle play session is kept.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
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
