package logger

import (
	"context"
	"testing"

	"top-sales-tracker/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerWithConfig_Levels(t *testing.T) {
	tests := []struct {
		name   string
		config LoggerConfig
		want   zapcore.Level
	}{
		{name: "dev defaults to info", config: LoggerConfig{Stage: constants.DevEnvironment}, want: zapcore.InfoLevel},
		{name: "test defaults to warn", config: LoggerConfig{Stage: constants.TestEnvironment}, want: zapcore.WarnLevel},
		{name: "prod json", config: LoggerConfig{Stage: constants.ProdEnvironment, EnableJSON: true}, want: zapcore.InfoLevel},
		{name: "explicit level wins", config: LoggerConfig{Stage: constants.TestEnvironment, Level: "DEBUG"}, want: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, InitLoggerWithConfig(tt.config))
			assert.NotNil(t, Log)
			assert.Equal(t, tt.want, Level())
		})
	}
}

func TestInitLoggerWithConfig_InvalidLevel(t *testing.T) {
	err := InitLoggerWithConfig(LoggerConfig{Stage: constants.DevEnvironment, Level: "loud"})
	assert.Error(t, err)
}

func TestInitLogger_ReadsLevelFromEnv(t *testing.T) {
	t.Setenv(constants.EnvLogLevel, "error")
	InitLogger(constants.DevEnvironment)
	assert.Equal(t, zapcore.ErrorLevel, Level())
}

func TestHelpersWithoutInit(t *testing.T) {
	Log = nil
	assert.NotPanics(t, func() {
		Info("info")
		Debug("debug")
		Warn("warn")
		Error("error")
		_ = With().Sync()
	})
}

func TestInitLogger_InvalidEnvLevelFallsBack(t *testing.T) {
	t.Setenv(constants.EnvLogLevel, "loud")
	assert.NotPanics(t, func() { InitLogger(constants.DevEnvironment) })
	assert.Equal(t, zapcore.InfoLevel, Level())
}

func TestCorrelationContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, CorrelationIDFromContext(ctx))
	assert.NotNil(t, FromContext(ctx))

	ctx = ContextWithCorrelationID(ctx, "req-42")
	assert.Equal(t, "req-42", CorrelationIDFromContext(ctx))
	assert.NotNil(t, FromContext(ctx))
}
