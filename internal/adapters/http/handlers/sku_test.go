package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/quote-service/internal/adapters/http/dto"
	"github.com/salesdesk/quote-service/internal/app"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/mocks"
	"github.com/salesdesk/quote-service/internal/ports"
)

func setupSKUHandler(t *testing.T) (*SKUHandler, *mocks.MockSKURepository) {
	t.Helper()

	repo := mocks.NewMockSKURepository(t)
	service := app.NewSKUService(app.SKUServiceConfig{
		SKUs:   repo,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return NewSKUHandler(service), repo
}

func storedSKU(code string) *domain.SKU {
	return &domain.SKU{
		ID:            "sku-" + code,
		Code:          code,
		Name:          "Widget",
		Category:      domain.SKUCategoryProduct,
		Price:         decimal.RequireFromString("19.99"),
		Cost:          decimal.RequireFromString("7.50"),
		StockQuantity: 10,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

func TestSKUHandler_Create(t *testing.T) {
	handler, repo := setupSKUHandler(t)

	repo.EXPECT().GetByCode(mock.Anything, "WIDGET01").
		Return(nil, domain.NewNotFoundError("sku", "WIDGET01"))
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	body := `{"code":"WIDGET01","name":"Widget","category":"product","price":"19.99","cost":"7.50","stockQuantity":10}`
	c, w := testContext(t, http.MethodPost, "/api/v1/skus", body, "admin-1")

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SKUResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WIDGET01", resp.Code)
	assert.Equal(t, "19.99", resp.Price)
	assert.True(t, resp.IsActive, "new entries start active")
}

func TestSKUHandler_Create_BadPrice(t *testing.T) {
	handler, _ := setupSKUHandler(t)

	body := `{"code":"WIDGET01","name":"Widget","category":"product","price":"cheap","cost":"7.50"}`
	c, w := testContext(t, http.MethodPost, "/api/v1/skus", body, "admin-1")

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "price")
}

func TestSKUHandler_Create_BadCategory(t *testing.T) {
	handler, _ := setupSKUHandler(t)

	body := `{"code":"WIDGET01","name":"Widget","category":"gadgetry","price":"19.99","cost":"7.50"}`
	c, w := testContext(t, http.MethodPost, "/api/v1/skus", body, "admin-1")

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error.Details, "category")
}

func TestSKUHandler_Create_DuplicateCode(t *testing.T) {
	handler, repo := setupSKUHandler(t)

	repo.EXPECT().GetByCode(mock.Anything, "WIDGET01").Return(storedSKU("WIDGET01"), nil)

	body := `{"code":"WIDGET01","name":"Widget","category":"product","price":"19.99","cost":"7.50"}`
	c, w := testContext(t, http.MethodPost, "/api/v1/skus", body, "admin-1")

	handler.Create(c)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestSKUHandler_Get(t *testing.T) {
	handler, repo := setupSKUHandler(t)

	repo.EXPECT().GetByID(mock.Anything, "sku-WIDGET01").Return(storedSKU("WIDGET01"), nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/skus/sku-WIDGET01", "", "user-1")
	c.Params = gin.Params{{Key: "id", Value: "sku-WIDGET01"}}

	handler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SKUResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WIDGET01", resp.Code)
}

func TestSKUHandler_Get_NotFound(t *testing.T) {
	handler, repo := setupSKUHandler(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").
		Return(nil, domain.NewNotFoundError("sku", "missing"))

	c, w := testContext(t, http.MethodGet, "/api/v1/skus/missing", "", "user-1")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSKUHandler_Update(t *testing.T) {
	handler, repo := setupSKUHandler(t)

	repo.EXPECT().GetByID(mock.Anything, "sku-WIDGET01").Return(storedSKU("WIDGET01"), nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	body := `{"price":"24.99","isActive":false}`
	c, w := testContext(t, http.MethodPut, "/api/v1/skus/sku-WIDGET01", body, "admin-1")
	c.Params = gin.Params{{Key: "id", Value: "sku-WIDGET01"}}

	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SKUResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "24.99", resp.Price)
	assert.False(t, resp.IsActive)
	assert.Equal(t, "WIDGET01", resp.Code, "code is immutable")
}

func TestSKUHandler_Delete(t *testing.T) {
	handler, repo := setupSKUHandler(t)

	repo.EXPECT().GetByID(mock.Anything, "sku-WIDGET01").Return(storedSKU("WIDGET01"), nil)
	repo.EXPECT().Delete(mock.Anything, "sku-WIDGET01").Return(nil)

	c, w := testContext(t, http.MethodDelete, "/api/v1/skus/sku-WIDGET01", "", "admin-1")
	c.Params = gin.Params{{Key: "id", Value: "sku-WIDGET01"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSKUHandler_Search(t *testing.T) {
	handler, repo := setupSKUHandler(t)

	repo.EXPECT().Search(mock.Anything, ports.SKUFilter{
		Name:       "Widget",
		ActiveOnly: true,
		Page:       2,
		Limit:      5,
	}).Return([]*domain.SKU{storedSKU("WIDGET01")}, int64(6), nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/skus?name=Widget&activeOnly=true&page=2&limit=5", "", "user-1")

	handler.Search(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaginatedResponse[*SKUResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, int64(6), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestSKUHandler_Search_BadPriceFilter(t *testing.T) {
	handler, _ := setupSKUHandler(t)

	c, w := testContext(t, http.MethodGet, "/api/v1/skus?minPrice=abc", "", "user-1")

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSKUHandler_RegisterSKURoutes(t *testing.T) {
	handler, _ := setupSKUHandler(t)

	router := gin.New()
	api := router.Group("/api/v1")
	admin := router.Group("/api/v1/admin")
	handler.RegisterSKURoutes(api, admin)

	expectedRoutes := []string{
		"GET /api/v1/skus",
		"GET /api/v1/skus/:id",
		"POST /api/v1/admin/skus",
		"PUT /api/v1/admin/skus/:id",
		"DELETE /api/v1/admin/skus/:id",
	}

	routeMap := make(map[string]bool)
	for _, r := range router.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range expectedRoutes {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}
