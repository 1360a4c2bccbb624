package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/salesdesk/quote-service/internal/adapters/http/dto"
	"github.com/salesdesk/quote-service/internal/app"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/ports"
)

// SKUHandler handles product catalog HTTP endpoints.
type SKUHandler struct {
	service *app.SKUService
}

// NewSKUHandler creates a new SKU handler.
func NewSKUHandler(service *app.SKUService) *SKUHandler {
	return &SKUHandler{
		service: service,
	}
}

// CreateSKURequest is the request body for creating a catalog entry.
// Monetary values are decimal strings.
type CreateSKURequest struct {
	Code          string         `json:"code"          validate:"required,notempty"`
	Name          string         `json:"name"          validate:"required,notempty"`
	Description   string         `json:"description"`
	Category      string         `json:"category"      validate:"required,oneof=product service subscription"`
	Price         string         `json:"price"         validate:"required"`
	Cost          string         `json:"cost"          validate:"required"`
	StockQuantity int            `json:"stockQuantity" validate:"gte=0"`
	Metadata      map[string]any `json:"metadata"`
}

// UpdateSKURequest is the request body for patching a catalog entry.
// Absent fields are left untouched; the code is immutable.
type UpdateSKURequest struct {
	Name          *string        `json:"name"          validate:"omitempty,notempty"`
	Description   *string        `json:"description"`
	Category      *string        `json:"category"      validate:"omitempty,oneof=product service subscription"`
	Price         *string        `json:"price"`
	Cost          *string        `json:"cost"`
	StockQuantity *int           `json:"stockQuantity" validate:"omitempty,gte=0"`
	IsActive      *bool          `json:"isActive"`
	Metadata      map[string]any `json:"metadata"`
}

// SearchSKURequest carries catalog search filters from the query string.
type SearchSKURequest struct {
	dto.PaginationRequest

	Code       string `form:"code"`
	Name       string `form:"name"`
	Category   string `form:"category"  validate:"omitempty,oneof=product service subscription"`
	MinPrice   string `form:"minPrice"`
	MaxPrice   string `form:"maxPrice"`
	ActiveOnly bool   `form:"activeOnly"`
}

// SKUResponse is the HTTP representation of a catalog entry.
type SKUResponse struct {
	ID            string         `json:"id"`
	Code          string         `json:"code"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Category      string         `json:"category"`
	Price         string         `json:"price"`
	Cost          string         `json:"cost"`
	StockQuantity int            `json:"stockQuantity"`
	IsActive      bool           `json:"isActive"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// toSKUResponse converts a domain SKU to its HTTP representation.
func toSKUResponse(s *domain.SKU) *SKUResponse {
	return &SKUResponse{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		Description:   s.Description,
		Category:      string(s.Category),
		Price:         s.Price.StringFixed(domain.MoneyPlaces),
		Cost:          s.Cost.StringFixed(domain.MoneyPlaces),
		StockQuantity: s.StockQuantity,
		IsActive:      s.IsActive,
		Metadata:      s.Metadata,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// parseMoney parses a decimal string field, writing a 400 on failure.
// Returns false if the response has already been written.
func parseMoney(c *gin.Context, field, value string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeValidation,
			field+" must be a decimal string",
		).WithTraceID(dto.GetTraceID(c)))

		return decimal.Zero, false
	}

	return amount, true
}

// Create handles POST /api/v1/skus.
func (h *SKUHandler) Create(c *gin.Context) {
	var req CreateSKURequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	price, ok := parseMoney(c, "price", req.Price)
	if !ok {
		return
	}

	cost, ok := parseMoney(c, "cost", req.Cost)
	if !ok {
		return
	}

	sku, err := h.service.Create(c.Request.Context(), app.NewSKURequest{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		Category:      domain.SKUCategory(req.Category),
		Price:         price,
		Cost:          cost,
		StockQuantity: req.StockQuantity,
		Metadata:      req.Metadata,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSKUResponse(sku))
}

// Get handles GET /api/v1/skus/:id.
func (h *SKUHandler) Get(c *gin.Context) {
	sku, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSKUResponse(sku))
}

// Update handles PUT /api/v1/skus/:id.
func (h *SKUHandler) Update(c *gin.Context) {
	var req UpdateSKURequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	patch := app.SKUPatch{
		Name:          req.Name,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		IsActive:      req.IsActive,
		Metadata:      req.Metadata,
	}

	if req.Category != nil {
		category := domain.SKUCategory(*req.Category)
		patch.Category = &category
	}

	if req.Price != nil {
		price, ok := parseMoney(c, "price", *req.Price)
		if !ok {
			return
		}

		patch.Price = &price
	}

	if req.Cost != nil {
		cost, ok := parseMoney(c, "cost", *req.Cost)
		if !ok {
			return
		}

		patch.Cost = &cost
	}

	sku, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSKUResponse(sku))
}

// Delete handles DELETE /api/v1/skus/:id.
func (h *SKUHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Search handles GET /api/v1/skus.
func (h *SKUHandler) Search(c *gin.Context) {
	var req SearchSKURequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	filter := ports.SKUFilter{
		Code:       req.Code,
		Name:       req.Name,
		Category:   domain.SKUCategory(req.Category),
		ActiveOnly: req.ActiveOnly,
		Page:       req.GetPage(),
		Limit:      req.GetLimit(),
	}

	if req.MinPrice != "" {
		minPrice, ok := parseMoney(c, "minPrice", req.MinPrice)
		if !ok {
			return
		}

		filter.MinPrice = minPrice
	}

	if req.MaxPrice != "" {
		maxPrice, ok := parseMoney(c, "maxPrice", req.MaxPrice)
		if !ok {
			return
		}

		filter.MaxPrice = maxPrice
	}

	skus, total, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]*SKUResponse, len(skus))
	for i, s := range skus {
		items[i] = toSKUResponse(s)
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(items, filter.Page, filter.Limit, total))
}

// RegisterSKURoutes registers read routes on rg and mutation routes on
// admin. Catalog writes are restricted to administrators.
func (h *SKUHandler) RegisterSKURoutes(rg, admin *gin.RouterGroup) {
	skus := rg.Group("/skus")
	skus.GET("", h.Search)
	skus.GET("/:id", h.Get)

	adminSKUs := admin.Group("/skus")
	adminSKUs.POST("", h.Create)
	adminSKUs.PUT("/:id", h.Update)
	adminSKUs.DELETE("/:id", h.Delete)
}
