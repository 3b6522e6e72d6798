package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is used when RouterConfig.Timeout is not set.
const DefaultRequestTimeout = 10 * time.Second

// RouterConfig contains everything SetupRouter wires onto the engine.
type RouterConfig struct {
	// Logger is the base logger; request loggers are derived from it.
	Logger *slog.Logger

	// AuthConfig names the gateway identity header.
	AuthConfig *config.AuthConfig

	// ServiceName labels request spans.
	ServiceName string

	// Timeout bounds each /api/v1 request, including its store transaction.
	Timeout time.Duration

	HealthHandler *handlers.HealthHandler
	VoteHandler   *handlers.VoteHandler
	QuoteHandler  *handlers.QuoteHandler
	StatsHandler  *handlers.StatsHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID and correlation ID - seed the context logger
//  3. OpenTelemetry - tracing and HTTP metrics
//  4. Logging - one line per request (skips health endpoints)
//  5. Timeout - request deadline on /api/v1 only
//
// Route groups:
//   - /-/ (internal): health endpoints, no auth
//   - /api/v1 public: quote listing, single quote, leaderboard, dashboard
//   - /api/v1 protected: votes, authoring, personal summary
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(middleware.Recovery())

	if cfg.Logger != nil {
		engine.Use(withBaseLogger(cfg.Logger))
	}

	engine.Use(middleware.RequestID(), middleware.CorrelationID())

	if cfg.ServiceName != "" {
		engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	}

	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	apiV1 := engine.Group("/api/v1", middleware.RequestTimeout(timeout))
	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers business routes. gin matches static segments
// such as /quotes/mine before the /quotes/:id parameter.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	public := rg.Group("", middleware.OptionalAuth(cfg.AuthConfig))
	protected := rg.Group("", middleware.RequireAuth(cfg.AuthConfig))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterPublicRoutes(public)
		cfg.QuoteHandler.RegisterProtectedRoutes(protected)
	}

	if cfg.StatsHandler != nil {
		cfg.StatsHandler.RegisterPublicRoutes(public)
		cfg.StatsHandler.RegisterProtectedRoutes(protected)
	}

	if cfg.VoteHandler != nil {
		cfg.VoteHandler.RegisterVoteRoutes(protected)
	}
}

// withBaseLogger seeds each request context with the service logger so the
// id middleware enriches it rather than slog.Default.
func withBaseLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	}
}
