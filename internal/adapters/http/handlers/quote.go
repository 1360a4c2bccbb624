package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/salesdesk/quote-service/internal/adapters/http/dto"
	"github.com/salesdesk/quote-service/internal/adapters/http/middleware"
	"github.com/salesdesk/quote-service/internal/app"
	"github.com/salesdesk/quote-service/internal/domain"
)

// QuoteHandler handles quote lifecycle HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteItemRequest is one requested line item.
type QuoteItemRequest struct {
	SKUCode  string `json:"skuCode"  validate:"required,notempty"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// GenerateQuoteRequest is the request body for creating a quote.
type GenerateQuoteRequest struct {
	Items     []QuoteItemRequest `json:"items"     validate:"required,min=1,dive"`
	Notes     string             `json:"notes"`
	Metadata  map[string]any     `json:"metadata"`
	ExpiresAt *time.Time         `json:"expiresAt"`
}

// UpdateQuoteRequest is the request body for patching a draft quote.
// Absent fields are left untouched. Monetary values are decimal strings.
type UpdateQuoteRequest struct {
	Items          *[]QuoteItemRequest `json:"items"          validate:"omitempty,min=1,dive"`
	Notes          *string             `json:"notes"`
	Metadata       map[string]any      `json:"metadata"`
	DiscountAmount *string             `json:"discountAmount"`
}

// QuoteItemResponse is one priced line item.
type QuoteItemResponse struct {
	SKUCode   string `json:"skuCode"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// QuoteResponse is the HTTP representation of a quote. Monetary fields
// are fixed two-decimal strings, never floats.
type QuoteResponse struct {
	ID             string              `json:"id"`
	UserID         string              `json:"userId"`
	Status         string              `json:"status"`
	Items          []QuoteItemResponse `json:"items"`
	Subtotal       string              `json:"subtotal"`
	DiscountAmount string              `json:"discountAmount"`
	TaxAmount      string              `json:"taxAmount"`
	TotalAmount    string              `json:"totalAmount"`
	Notes          string              `json:"notes,omitempty"`
	Metadata       map[string]any      `json:"metadata,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	ExpiresAt      time.Time           `json:"expiresAt"`
}

// toQuoteResponse converts a domain Quote to its HTTP representation.
func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	items := make([]QuoteItemResponse, len(q.Items))
	for i, item := range q.Items {
		items[i] = QuoteItemResponse{
			SKUCode:   item.SKUCode,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(domain.MoneyPlaces),
			LineTotal: item.LineTotal.StringFixed(domain.MoneyPlaces),
		}
	}

	return &QuoteResponse{
		ID:             q.ID,
		UserID:         q.UserID,
		Status:         string(q.Status),
		Items:          items,
		Subtotal:       q.Subtotal.StringFixed(domain.MoneyPlaces),
		DiscountAmount: q.DiscountAmount.StringFixed(domain.MoneyPlaces),
		TaxAmount:      q.TaxAmount.StringFixed(domain.MoneyPlaces),
		TotalAmount:    q.TotalAmount.StringFixed(domain.MoneyPlaces),
		Notes:          q.Notes,
		Metadata:       q.Metadata,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
		ExpiresAt:      q.ExpiresAt,
	}
}

// toItemRequests converts HTTP line items to the service shape.
func toItemRequests(items []QuoteItemRequest) []app.QuoteItemRequest {
	reqs := make([]app.QuoteItemRequest, len(items))
	for i, item := range items {
		reqs[i] = app.QuoteItemRequest{SKUCode: item.SKUCode, Quantity: item.Quantity}
	}

	return reqs
}

// Generate handles POST /api/v1/quotes.
// Prices the requested items from the catalog and creates a draft quote.
func (h *QuoteHandler) Generate(c *gin.Context) {
	var req GenerateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	quote, err := h.service.Generate(c.Request.Context(), app.NewQuoteRequest{
		Items:     toItemRequests(req.Items),
		Notes:     req.Notes,
		Metadata:  req.Metadata,
		ExpiresAt: req.ExpiresAt,
	}, requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toQuoteResponse(quote))
}

// Get handles GET /api/v1/quotes/:id.
func (h *QuoteHandler) Get(c *gin.Context) {
	quote, err := h.service.Get(c.Request.Context(), c.Param("id"), requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// Update handles PUT /api/v1/quotes/:id.
func (h *QuoteHandler) Update(c *gin.Context) {
	var req UpdateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	patch := app.QuotePatch{
		Notes:    req.Notes,
		Metadata: req.Metadata,
	}

	if req.Items != nil {
		items := toItemRequests(*req.Items)
		patch.Items = &items
	}

	if req.DiscountAmount != nil {
		amount, err := decimal.NewFromString(*req.DiscountAmount)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrorCodeValidation,
				"discountAmount must be a decimal string",
			).WithTraceID(dto.GetTraceID(c)))
			return
		}

		patch.DiscountAmount = &amount
	}

	quote, err := h.service.Update(c.Request.Context(), c.Param("id"), patch, requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// Delete handles DELETE /api/v1/quotes/:id.
func (h *QuoteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), requesterID(c)); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /api/v1/quotes.
// Returns one page of the requester's quotes, newest first.
func (h *QuoteHandler) List(c *gin.Context) {
	var p dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &p); err != nil {
		respondBindingError(c, err)
		return
	}

	page := p.GetPage()
	limit := p.GetLimit()

	result, err := h.service.List(c.Request.Context(), requesterID(c), page, limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes := make([]*QuoteResponse, len(result.Quotes))
	for i, q := range result.Quotes {
		quotes[i] = toQuoteResponse(q)
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(quotes, page, limit, result.Total))
}

// Send handles POST /api/v1/quotes/:id/send.
func (h *QuoteHandler) Send(c *gin.Context) {
	h.transition(c, h.service.Send)
}

// Accept handles POST /api/v1/quotes/:id/accept.
func (h *QuoteHandler) Accept(c *gin.Context) {
	h.transition(c, h.service.Accept)
}

// Reject handles POST /api/v1/quotes/:id/reject.
func (h *QuoteHandler) Reject(c *gin.Context) {
	h.transition(c, h.service.Reject)
}

func (h *QuoteHandler) transition(c *gin.Context, do func(ctx context.Context, quoteID, requesterID string) (*domain.Quote, error)) {
	quote, err := do(c.Request.Context(), c.Param("id"), requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.POST("", h.Generate)
	quotes.GET("", h.List)
	quotes.GET("/:id", h.Get)
	quotes.PUT("/:id", h.Update)
	quotes.DELETE("/:id", h.Delete)
	quotes.POST("/:id/send", h.Send)
	quotes.POST("/:id/accept", h.Accept)
	quotes.POST("/:id/reject", h.Reject)
}

// requesterID returns the authenticated user's ID from claims.
// RequireAuth guarantees a subject is present on protected routes.
func requesterID(c *gin.Context) string {
	if claims := middleware.GetClaims(c); claims != nil {
		return claims.Subject
	}

	return ""
}

// respondBindingError writes a 400 for binding and validation failures,
// including field-level details when available.
func respondBindingError(c *gin.Context, err error) {
	if fieldErrors := dto.ValidationErrors(err); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			fieldErrors,
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		"invalid request body",
	).WithTraceID(dto.GetTraceID(c)))
}
