package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"top-sales-tracker/internal/constants"
	"top-sales-tracker/internal/logger"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config holds the service configuration
type Config struct {
	Stage string
	Port  string

	// Blockspan
	BlockspanBaseURL   string
	BlockspanAPIKey    string
	BlockspanAPIKeyARN string

	QueryTimeout   time.Duration
	SessionIdleTTL time.Duration

	// Per-client trigger limits
	QueryRateLimit float64
	QueryRateBurst int

	CORSAllowedOrigins []string
	// Proxies whose X-Forwarded-For is believed. Empty trusts none.
	TrustedProxies []string
}

// Load reads an optional .env file and then the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		logger.Warn("No .env file loaded, using environment", zap.Error(err))
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	queryTimeout, err := getEnvDuration(constants.EnvQueryTimeout, 30*time.Second)
	if err != nil {
		return nil, err
	}
	sessionIdleTTL, err := getEnvDuration(constants.EnvSessionIdleTTL, 30*time.Minute)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvFloat(constants.EnvQueryRateLimit, 1)
	if err != nil {
		return nil, err
	}
	rateBurst, err := getEnvInt(constants.EnvQueryRateBurst, 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Stage:              getEnv(constants.EnvStage, constants.DevEnvironment),
		Port:               getEnv(constants.EnvAPIPort, "8000"),
		BlockspanBaseURL:   getEnv(constants.EnvBlockspanBaseURL, constants.BlockspanDefaultBaseURL),
		BlockspanAPIKey:    os.Getenv(constants.EnvBlockspanAPIKey),
		BlockspanAPIKeyARN: os.Getenv(constants.EnvBlockspanAPIKeyARN),
		QueryTimeout:       queryTimeout,
		SessionIdleTTL:     sessionIdleTTL,
		QueryRateLimit:     rateLimit,
		QueryRateBurst:     rateBurst,
		CORSAllowedOrigins: splitList(getEnv(constants.EnvCORSAllowedOrigins, "*")),
		TrustedProxies:     splitList(os.Getenv(constants.EnvTrustedProxies)),
	}

	if !IsValidStage(cfg.Stage) {
		return nil, errors.Errorf("unsupported %s %q", constants.EnvStage, cfg.Stage)
	}
	if cfg.QueryRateLimit <= 0 || cfg.QueryRateBurst <= 0 {
		return nil, errors.Errorf("%s and %s must be positive", constants.EnvQueryRateLimit, constants.EnvQueryRateBurst)
	}

	return cfg, nil
}

// IsValidStage checks if the provided stage is one of the known runtime environments
func IsValidStage(stage string) bool {
	switch stage {
	case constants.ProdEnvironment, constants.DevEnvironment, constants.LocalEnvironment, constants.TestEnvironment:
		return true
	default:
		return false
	}
}

// IsProduction reports whether the service runs in the prod stage
func (c *Config) IsProduction() bool {
	return c.Stage == constants.ProdEnvironment
}

// Addr is the listen address for the local server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return f, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
