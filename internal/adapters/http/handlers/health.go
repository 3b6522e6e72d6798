// Package handlers binds HTTP routes to the application services.
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/quote-vote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

// readinessRetryAfter is sent with a failed readiness probe.
const readinessRetryAfter = 5 * time.Second

// BuildInfo describes the running binary. Version, Commit and BuildTime are
// injected with ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`

	// Store is the ledger database driver, e.g. "postgres" or "sqlite".
	Store string `json:"store,omitempty"`
}

// NewBuildInfo creates a BuildInfo with the Go version automatically set.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// WithStore returns a copy that reports the ledger driver.
func (b BuildInfo) WithStore(driver string) BuildInfo {
	b.Store = driver
	return b
}

// HealthHandler serves the probes under /-/.
type HealthHandler struct {
	registry ports.HealthRegistry
	build    BuildInfo
	started  time.Time
}

// NewHealthHandler creates a new health handler. Uptime counts from this call.
func NewHealthHandler(registry ports.HealthRegistry, build BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry: registry,
		build:    build,
		started:  time.Now(),
	}
}

type livenessResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Liveness handles GET /-/live. It never touches the store, so a slow
// database cannot get the process restarted.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	})
}

type readinessResponse struct {
	Status    string                        `json:"status"`
	Checks    map[string]*ports.CheckResult `json:"checks,omitempty"`
	Timestamp time.Time                     `json:"timestamp"`
}

// Readiness handles GET /-/ready: 200 when every registered check, including
// the store ping, passes. Otherwise 503 with Retry-After.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()
	result := h.registry.CheckAll(ctx)

	resp := readinessResponse{
		Status:    string(result.Status),
		Checks:    result.Checks,
		Timestamp: result.Timestamp,
	}

	if result.Status != ports.HealthStatusUnhealthy {
		c.JSON(http.StatusOK, resp)
		return
	}

	logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
		slog.Any("failing", failingChecks(result.Checks)),
	)

	c.Header("Retry-After", strconv.Itoa(int(readinessRetryAfter.Seconds())))
	c.JSON(http.StatusServiceUnavailable, resp)
}

func failingChecks(checks map[string]*ports.CheckResult) []string {
	var names []string

	for name, r := range checks {
		if r.Status == ports.HealthStatusUnhealthy {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Build handles GET /-/build.
func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.build)
}

// RegisterRoutes mounts the probes, build info and the Prometheus registry
// (which carries the ledger counters) under /-/.
func (h *HealthHandler) RegisterRoutes(engine *gin.Engine) {
	internal := engine.Group("/-")
	internal.GET("/live", h.Liveness)
	internal.GET("/ready", h.Readiness)
	internal.GET("/build", h.Build)
	internal.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
