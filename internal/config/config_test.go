package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/cyberquest/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		PasswordMinLength:  8,
		AutoAdvanceMS:      0,
		SessionTTLMinutes:  60,
		SummaryWorkerCount: 1,
		SummaryQueueSize:   32,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
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

func TestValidate_PasswordMinLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		valid  bool
	}{
		{name: "default", length: 8, valid: true},
		{name: "maximum", length: 64, valid: true},
		{name: "too short", length: 7, valid: false},
		{name: "too long", length: 65, valid: false},
		{name: "zero", length: 0, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.PasswordMinLength = tt.length

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "PASSWORD_MIN_LENGTH")
			}
		})
	}
}

func TestValidate_AutoAdvance(t *testing.T) {
	tests := []struct {
		name  string
		ms    int
		valid bool
	}{
		{name: "disabled", ms: 0, valid: true},
		{name: "one and a half seconds", ms: 1500, valid: true},
		{name: "maximum", ms: 60000, valid: true},
		{name: "negative", ms: -1, valid: false},
		{name: "too long", ms: 60001, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.AutoAdvanceMS = tt.ms

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "AUTO_ADVANCE_MS")
			}
		})
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		valid bool
	}{
		{name: "invalid level", level: "INVALID", valid: false},
		{name: "empty level", level: "", valid: false},
		{name: "lowercase valid level", level: "debug", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_QuizDir(t *testing.T) {
	cfg := validConfig()
	cfg.QuizDir = t.TempDir()
	assert.NoError(t, cfg.Validate())

	cfg.QuizDir = "/nonexistent/quizzes-12345"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "QUIZ_DIR")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		LogLevel:          "INVALID",
		PasswordMinLength: 2,
		AutoAdvanceMS:     -5,
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "PASSWORD_MIN_LENGTH")
	assert.Contains(t, errStr, "AUTO_ADVANCE_MS")
	assert.Contains(t, errStr, "SESSION_TTL_MINUTES")
	assert.Contains(t, errStr, "SUMMARY_WORKER_COUNT")
	assert.Contains(t, errStr, "SUMMARY_QUEUE_SIZE")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("AUTO_ADVANCE_MS", "1500")
	t.Setenv("SESSION_TTL_MINUTES", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.AutoAdvance())
	assert.Equal(t, 60*time.Minute, cfg.SessionTTL())
}
