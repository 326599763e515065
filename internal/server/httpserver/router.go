package httpserver

import (
	"net/http"

	"github.com/yndnr/memod/internal/core/service"
	"github.com/yndnr/memod/internal/server/httpserver/handler"
	"github.com/yndnr/memod/internal/telemetry/logger"
	"github.com/yndnr/memod/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// MemoService handles memo operations.
	MemoService *service.MemoService

	// Logger is attached to each request context and used for access logs.
	Logger logger.Logger

	// Metrics, when set, records request metrics and serves GET /metrics.
	Metrics *metric.Registry

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = no CORS headers).
	CORSAllowedOrigins []string

	// GlobalRateLimit is the rate limit per IP (requests/second, 0 = off).
	GlobalRateLimit int

	// TrustProxyHeaders attributes requests to X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool

	// EnableAudit enables the access log for all requests.
	EnableAudit bool
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
// Order: Recover -> RequestID -> ClientIP -> CORS -> RateLimit -> Metrics -> Audit -> Handler
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	slogger := logger.Slog(log)

	var opts []handler.Option
	if cfg.Metrics != nil {
		opts = append(opts, handler.WithMetricsHandler(cfg.Metrics.Handler()))
	}
	h := handler.New(cfg.MemoService, slogger, opts...)

	middlewares := []Middleware{
		Recover(slogger),
		RequestID(log),
		ClientIP(cfg.TrustProxyHeaders),
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		middlewares = append(middlewares, CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.GlobalRateLimit > 0 {
		middlewares = append(middlewares, RateLimit(cfg.GlobalRateLimit))
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}
	if cfg.EnableAudit {
		middlewares = append(middlewares, Audit(slogger))
	}

	return Chain(h, middlewares...)
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		GlobalRateLimit: 1000, // 1000 requests/second per IP
		EnableAudit:     true,
	}
}
