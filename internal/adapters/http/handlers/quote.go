package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-vote-service/internal/app"
)

// QuoteHandler handles quote authoring and listing.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// List handles GET /api/v1/quotes.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param category query string false "Category"
// @Param author query string false "Author substring"
// @Param search query string false "Content or author substring"
// @Param sort_by query string false "vote_count, created_at, updated_at or author"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size, 1-50"
// @Success 200 {object} dto.QuotePageResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	h.list(c, "")
}

// ListMine handles GET /api/v1/quotes/mine.
func (h *QuoteHandler) ListMine(c *gin.Context) {
	h.list(c, middleware.UserID(c))
}

func (h *QuoteHandler) list(c *gin.Context, ownerID string) {
	var req dto.ListQuotesRequest
	if !dto.BindQuery(c, &req) {
		return
	}

	page, err := h.service.List(c.Request.Context(), req.ToQuery(ownerID))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewQuotePageResponse(page)))
}

// Create handles POST /api/v1/quotes.
//
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body dto.CreateQuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	q, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req.ToInput())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(dto.NewQuoteResponse(q)))
}

// Get handles GET /api/v1/quotes/:id.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	q, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewQuoteResponse(q)))
}

// Update handles PUT /api/v1/quotes/:id. Only the owner may edit, and only
// while the quote has no votes.
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuoteRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	q, err := h.service.Update(c.Request.Context(), middleware.UserID(c), id, req.ToPatch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewQuoteResponse(q)))
}

// Delete handles DELETE /api/v1/quotes/:id under the same rules as Update.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"id": id, "deleted": true}))
}

// RegisterPublicRoutes registers the read-only quote routes.
func (h *QuoteHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes", h.List)
	rg.GET("/quotes/:id", h.Get)
}

// RegisterProtectedRoutes registers routes that need an authenticated caller.
func (h *QuoteHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes/mine", h.ListMine)
	rg.POST("/quotes", h.Create)
	rg.PUT("/quotes/:id", h.Update)
	rg.DELETE("/quotes/:id", h.Delete)
}
