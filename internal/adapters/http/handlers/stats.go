package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-vote-service/internal/app"
)

// StatsHandler exposes the aggregation reader.
type StatsHandler struct {
	service *app.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(service *app.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// TopVoted handles GET /api/v1/quotes/top-voted.
func (h *StatsHandler) TopVoted(c *gin.Context) {
	top, err := h.service.TopVoted(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewTopVotedResponse(top)))
}

// PersonalSummary handles GET /api/v1/quotes/summary/personal.
func (h *StatsHandler) PersonalSummary(c *gin.Context) {
	summary, err := h.service.PersonalSummary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewPersonalSummaryResponse(summary)))
}

// Dashboard handles GET /api/v1/quotes/dashboard. Anonymous callers get the
// leaderboard only; personal_summary is then null.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewDashboardResponse(d.TopVoted, d.Summary)))
}

// RegisterPublicRoutes registers the leaderboard and the dashboard. The
// dashboard group is expected to run OptionalAuth.
func (h *StatsHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes/top-voted", h.TopVoted)
	rg.GET("/quotes/dashboard", h.Dashboard)
}

// RegisterProtectedRoutes registers routes that need an authenticated caller.
func (h *StatsHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes/summary/personal", h.PersonalSummary)
}
