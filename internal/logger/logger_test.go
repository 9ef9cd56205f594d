package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/cyberquest/internal/logger"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error %d", 42)

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "WARN  ")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error 42")
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithColors(false),
		logger.WithClock(fixedClock),
	).WithFields(map[string]any{"zeta": 1, "alpha": "a", "mid": true})

	log.Info("hello")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "2026-03-01 10:00:00.000 INFO "))
	assert.True(t, strings.HasSuffix(line, "hello alpha=a mid=true zeta=1"), line)
}

func TestLogger_WithPrefixDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	child := parent.WithPrefix("db").WithField("k", "v")

	parent.Info("from parent")
	child.Info("from child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "[db]")
	assert.NotContains(t, lines[0], "k=v")
	assert.Contains(t, lines[1], "[db]")
	assert.Contains(t, lines[1], "k=v")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  logger.Level
		valid bool
	}{
		{"DEBUG", logger.DEBUG, true},
		{"info", logger.INFO, true},
		{"warning", logger.WARN, true},
		{" Error ", logger.ERROR, true},
		{"verbose", logger.INFO, false},
		{"", logger.INFO, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
			assert.Equal(t, tt.valid, logger.ValidLevel(tt.in))
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	l := logger.New(logger.WithPrefix("req"))
	ctx := logger.NewContext(context.Background(), l)

	assert.Same(t, l, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}

func TestLogger_QuotesAwkwardFieldValues(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false)).
		WithFields(map[string]any{"title": "Redes sociales", "empty": "", "id": "rs-1"})

	log.Info("loaded")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, `loaded empty="" id=rs-1 title="Redes sociales"`), line)
}

func TestLogger_RedactedValue(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false))

	log.WithField("password", logger.Redacted("hunter2")).Info("scored %v", logger.Redacted("hunter2"))

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "password=[redacted]")
	assert.Contains(t, out, "scored [redacted]")
}

func TestLogger_ReportsCallerFile(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false))

	log.Warn("here")

	assert.Contains(t, buf.String(), "[logger_test.go:")
}
