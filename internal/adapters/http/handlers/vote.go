package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-vote-service/internal/app"
)

// VoteHandler exposes the vote ledger.
type VoteHandler struct {
	service *app.VoteService
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(service *app.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

// Vote handles POST /api/v1/votes/:quoteId.
// vote_value 1 casts the caller's vote (201), -1 retracts it (200).
//
// @Summary Cast or retract a vote
// @Tags votes
// @Accept json
// @Produce json
// @Param quoteId path int true "Quote ID"
// @Param body body dto.VoteRequest true "Vote direction"
// @Success 201 {object} dto.CastResponse
// @Success 200 {object} dto.RetractResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/votes/{quoteId} [post]
func (h *VoteHandler) Vote(c *gin.Context) {
	quoteID, ok := pathID(c, "quoteId")
	if !ok {
		return
	}

	var req dto.VoteRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	if req.VoteValue == dto.VoteRetract {
		h.retract(c, quoteID)
		return
	}

	res, err := h.service.Cast(c.Request.Context(), middleware.UserID(c), quoteID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(dto.CastResponse{
		QuoteID:   res.QuoteID,
		VoteValue: res.VoteValue,
	}))
}

// Retract handles DELETE /api/v1/votes/:quoteId.
func (h *VoteHandler) Retract(c *gin.Context) {
	quoteID, ok := pathID(c, "quoteId")
	if !ok {
		return
	}

	h.retract(c, quoteID)
}

func (h *VoteHandler) retract(c *gin.Context, quoteID int64) {
	res, err := h.service.Retract(c.Request.Context(), middleware.UserID(c), quoteID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.RetractResponse{
		QuoteID: res.QuoteID,
		Removed: res.Removed,
	}))
}

// CheckEligibility handles GET /api/v1/votes/check/:quoteId.
func (h *VoteHandler) CheckEligibility(c *gin.Context) {
	quoteID, ok := pathID(c, "quoteId")
	if !ok {
		return
	}

	res, err := h.service.CheckEligibility(c.Request.Context(), middleware.UserID(c), quoteID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewEligibilityResponse(res)))
}

// CurrentVote handles GET /api/v1/votes/me. The body is {"data": null} when
// the caller holds no vote.
func (h *VoteHandler) CurrentVote(c *gin.Context) {
	res, err := h.service.CurrentVote(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewCurrentVoteResponse(res)))
}

// RegisterVoteRoutes registers vote routes on an authenticated group.
func (h *VoteHandler) RegisterVoteRoutes(rg *gin.RouterGroup) {
	votes := rg.Group("/votes")
	votes.GET("/me", h.CurrentVote)
	votes.GET("/check/:quoteId", h.CheckEligibility)
	votes.POST("/:quoteId", h.Vote)
	votes.DELETE("/:quoteId", h.Retract)
}
