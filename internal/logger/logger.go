package logger

import (
	"context"
	"os"
	"strings"

	"top-sales-tracker/internal/constants"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the global logger instance
	Log *zap.Logger

	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level      string `json:"level"`
	Stage      string `json:"stage"`
	EnableJSON bool   `json:"enable_json"`
}

// InitLogger builds the global logger for a stage. prod logs JSON; every other stage logs to
// the console, colored except under test. LOG_LEVEL overrides the stage's default level.
func InitLogger(stage string) {
	config := LoggerConfig{
		Level:      os.Getenv(constants.EnvLogLevel),
		Stage:      stage,
		EnableJSON: stage == constants.ProdEnvironment,
	}
	err := InitLoggerWithConfig(config)
	if err != nil && config.Level != "" {
		bad := config.Level
		config.Level = ""
		if err = InitLoggerWithConfig(config); err == nil {
			Warn("Ignoring invalid log level", zap.String("level", bad))
		}
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
}

// InitLoggerWithConfig replaces the global logger
func InitLoggerWithConfig(config LoggerConfig) error {
	if err := SetLevel(defaultLevel(config)); err != nil {
		return err
	}

	var zapConfig zap.Config
	if config.EnableJSON {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.InitialFields = map[string]interface{}{
			"service": constants.ServiceName,
			"stage":   config.Stage,
		}
		zapConfig.DisableStacktrace = level.Level() > zapcore.DebugLevel
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if config.Stage == constants.TestEnvironment {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			zapConfig.DisableStacktrace = true
		}
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	zapConfig.Level = level
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := zapConfig.Build()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	Log = built
	return nil
}

// Tests only care about warnings; everything else defaults to info.
func defaultLevel(config LoggerConfig) string {
	if config.Level != "" {
		return config.Level
	}
	if config.Stage == constants.TestEnvironment {
		return "warn"
	}
	return "info"
}

// SetLevel changes the level of the global logger at runtime
func SetLevel(name string) error {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return errors.Wrapf(err, "invalid %s", constants.EnvLogLevel)
	}
	level.SetLevel(parsed)
	return nil
}

// Level reports the current level of the global logger
func Level() zapcore.Level {
	return level.Level()
}

// get returns the global logger, or a no-op logger when InitLogger has not run yet.
func get() *zap.Logger {
	if Log == nil {
		return zap.NewNop()
	}
	return Log
}

func Info(msg string, fields ...zapcore.Field) {
	get().Info(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	get().Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	get().Debug(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	get().Warn(msg, fields...)
}

// Fatal logs a message at FatalLevel and then calls os.Exit(1)
func Fatal(msg string, fields ...zapcore.Field) {
	get().Fatal(msg, fields...)
}

type correlationIDKey struct{}

// ContextWithCorrelationID tags ctx so loggers derived from it carry the ID
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFromContext returns the ID set by ContextWithCorrelationID, or ""
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext returns the global logger, tagged with the correlation ID of ctx if any
func FromContext(ctx context.Context) *zap.Logger {
	if id := CorrelationIDFromContext(ctx); id != "" {
		return get().With(zap.String("correlation_id", id))
	}
	return get()
}

// With creates a child logger and adds structured context to it
func With(fields ...zapcore.Field) *zap.Logger {
	return get().With(fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return get().Sync()
}
