package constants

// Common string constants used throughout the codebase
const (
	// Environments
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	LocalEnvironment = "local"
	TestEnvironment  = "test"

	ServiceName = "top-sales-tracker"
)

// Blockspan API
const (
	BlockspanDefaultBaseURL = "https://api.blockspan.com"
	BlockspanTopSalesPath   = "/v1/nfts/topnfts/"
	BlockspanAPIKeyHeader   = "X-API-KEY"
)

// Environment variable names
const (
	EnvStage              = "STAGE"
	EnvLogLevel           = "LOG_LEVEL"
	EnvAPIPort            = "API_PORT"
	EnvBlockspanBaseURL   = "BLOCKSPAN_BASE_URL"
	EnvBlockspanAPIKey    = "BLOCKSPAN_API_KEY"
	EnvBlockspanAPIKeyARN = "BLOCKSPAN_API_KEY_ARN"
	EnvQueryTimeout       = "QUERY_TIMEOUT"
	EnvSessionIdleTTL     = "SESSION_IDLE_TTL"
	EnvQueryRateLimit     = "QUERY_RATE_LIMIT"
	EnvQueryRateBurst     = "QUERY_RATE_BURST"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
)
