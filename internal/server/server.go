package server

import (
	"context"
	"net/http"
	"time"

	_ "top-sales-tracker/docs"
	awsClient "top-sales-tracker/internal/client/aws"
	"top-sales-tracker/internal/client/blockspan"
	httpClient "top-sales-tracker/internal/client/http"
	"top-sales-tracker/internal/config"
	"top-sales-tracker/internal/constants"
	"top-sales-tracker/internal/handlers"
	"top-sales-tracker/internal/interfaces"
	"top-sales-tracker/internal/logger"
	"top-sales-tracker/internal/middleware"
	"top-sales-tracker/internal/services"
	"top-sales-tracker/internal/view"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	apiKeyCacheTTL  = 5 * time.Minute
	janitorInterval = time.Minute
)

// Dependencies are the collaborators the router is built from
type Dependencies struct {
	Client   interfaces.TopSalesClient
	Keys     interfaces.APIKeyProvider
	Stats    handlers.StatsSource
	Registry *services.SessionRegistry
	Limiter  *middleware.RateLimiter
}

// Server is the wired application: router plus the background work it needs
type Server struct {
	Router   *gin.Engine
	Registry *services.SessionRegistry
	Limiter  *middleware.RateLimiter
	cfg      *config.Config
}

// New wires the Blockspan client, the API key source and the session registry from cfg
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	stats := httpClient.NewStatsCollector()
	client := blockspan.NewClient(cfg.BlockspanBaseURL, httpClient.WithMetricsCollector(stats))

	keys, err := newAPIKeyProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	deps := Dependencies{
		Client:  client,
		Keys:    keys,
		Stats:   stats,
		Limiter: middleware.NewRateLimiter(cfg.QueryRateLimit, cfg.QueryRateBurst),
	}
	deps.Registry = services.NewSessionRegistry(ControllerFactory(cfg, deps.Client, deps.Keys), cfg.SessionIdleTTL)

	return &Server{
		Router:   NewRouter(cfg, deps),
		Registry: deps.Registry,
		Limiter:  deps.Limiter,
		cfg:      cfg,
	}, nil
}

// StartBackground runs session eviction and rate limiter cleanup until ctx is done
func (s *Server) StartBackground(ctx context.Context) {
	if s.cfg.SessionIdleTTL > 0 {
		s.Registry.StartJanitor(ctx, janitorInterval)
	}
	s.Limiter.StartCleanup(ctx, 0)
}

// ControllerFactory builds controllers sharing one client and key source
func ControllerFactory(cfg *config.Config, client interfaces.TopSalesClient, keys interfaces.APIKeyProvider) services.ControllerFactory {
	return func() *services.SalesQueryController {
		return services.NewSalesQueryController(client, keys, services.WithQueryTimeout(cfg.QueryTimeout))
	}
}

func newAPIKeyProvider(ctx context.Context, cfg *config.Config) (interfaces.APIKeyProvider, error) {
	if cfg.BlockspanAPIKeyARN == "" {
		if cfg.BlockspanAPIKey == "" {
			// Queries will report an invalid key until one is configured
			logger.Warn("No Blockspan API key configured", zap.String("env", constants.EnvBlockspanAPIKey))
		}
		return services.NewStaticAPIKeyProvider(cfg.BlockspanAPIKey), nil
	}

	secrets, err := awsClient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create secrets manager client")
	}
	return services.NewSecretAPIKeyProvider(secrets, constants.EnvBlockspanAPIKeyARN, constants.EnvBlockspanAPIKey, apiKeyCacheTTL), nil
}

// NewRouter registers every route on a fresh gin engine
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	configureTrustedProxies(router, cfg.TrustedProxies)
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(configureCORS(cfg))
	router.SetHTMLTemplate(view.Template())

	if deps.Registry == nil {
		deps.Registry = services.NewSessionRegistry(ControllerFactory(cfg, deps.Client, deps.Keys), cfg.SessionIdleTTL)
	}
	if deps.Limiter == nil {
		deps.Limiter = middleware.NewRateLimiter(cfg.QueryRateLimit, cfg.QueryRateBurst)
	}

	healthHandler := handlers.NewHealthHandler(deps.Registry, deps.Stats)
	sessionHandler := handlers.NewSessionHandler(deps.Registry)
	topSalesHandler := handlers.NewTopSalesHandler(ControllerFactory(cfg, deps.Client, deps.Keys))
	streamHandler := handlers.NewStreamHandler(deps.Registry, originChecker(cfg.CORSAllowedOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	limited := deps.Limiter.Middleware()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/options", sessionHandler.GetOptions)
		v1.GET("/top-sales", limited, topSalesHandler.GetTopSales)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
			sessions.GET("/:id/view", sessionHandler.ViewSession)
			sessions.POST("/:id/view", limited, sessionHandler.SubmitView)
			sessions.PUT("/:id/selection", sessionHandler.UpdateSelection)
			sessions.POST("/:id/query", limited, sessionHandler.TriggerQuery)
			sessions.GET("/:id/stream", streamHandler.Stream)
		}
	}

	return router
}

// configureTrustedProxies limits which peers may set the client IP through forwarding
// headers. ClientIP keys the rate limiter, so an unparseable list trusts nobody.
func configureTrustedProxies(router *gin.Engine, proxies []string) {
	if err := router.SetTrustedProxies(proxies); err != nil {
		logger.Warn("Invalid trusted proxy list, trusting none",
			zap.Strings("trusted_proxies", proxies),
			zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
}

func configureCORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if allowsAnyOrigin(cfg.CORSAllowedOrigins) {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}
	return cors.New(corsConfig)
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// originChecker applies the CORS allow list to websocket upgrades
func originChecker(origins []string) func(r *http.Request) bool {
	if allowsAnyOrigin(origins) {
		return func(r *http.Request) bool { return true }
	}
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		allowed[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}
