package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/lumiere-beauty/storefront-api/internal/config"
)

func TestNewLoggerHonorsConfiguredLevel(t *testing.T) {
	logger := newLogger(&config.Config{
		Environment: config.Environment{Name: "development"},
		Log:         config.Log{Level: "warn", Format: "console"},
	})
	defer logger.Sync()

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLoggerFallsBackOnBadLevel(t *testing.T) {
	logger := newLogger(&config.Config{
		Environment: config.Environment{Name: "production"},
		Log:         config.Log{Level: "loud", Format: "json"},
	})
	defer logger.Sync()

	// Production config defaults to info when the level does not parse.
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
