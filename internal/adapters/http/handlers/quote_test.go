package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/quote-service/internal/adapters/http/dto"
	"github.com/salesdesk/quote-service/internal/adapters/http/middleware"
	"github.com/salesdesk/quote-service/internal/app"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/mocks"
)

type quoteHandlerMocks struct {
	quotes   *mocks.MockQuoteRepository
	skus     *mocks.MockSKURepository
	discount *mocks.MockDiscountPolicy
	flags    *mocks.MockFeatureFlags
}

// setupQuoteHandler wires a QuoteHandler to a real service backed by mocks.
func setupQuoteHandler(t *testing.T) (*QuoteHandler, quoteHandlerMocks) {
	t.Helper()

	m := quoteHandlerMocks{
		quotes:   mocks.NewMockQuoteRepository(t),
		skus:     mocks.NewMockSKURepository(t),
		discount: mocks.NewMockDiscountPolicy(t),
		flags:    mocks.NewMockFeatureFlags(t),
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes:   m.quotes,
		SKUs:     m.skus,
		Discount: m.discount,
		Flags:    m.flags,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		TaxRate:  decimal.NewFromFloat(0.1),
	})

	return NewQuoteHandler(service), m
}

// testContext creates a gin test context authenticated as userID.
func testContext(t *testing.T, method, path, body, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}

	if userID != "" {
		c.Set(middleware.ContextKeyClaims, &middleware.Claims{Subject: userID})
	}

	return c, w
}

func catalogSKU(code, price string) *domain.SKU {
	return &domain.SKU{
		ID:       "sku-" + code,
		Code:     code,
		Name:     code,
		Category: domain.SKUCategoryProduct,
		Price:    decimal.RequireFromString(price),
		IsActive: true,
	}
}

func storedQuote(id, userID string) *domain.Quote {
	quote := &domain.Quote{
		ID:     id,
		UserID: userID,
		Status: domain.QuoteStatusDraft,
		Items: []domain.QuoteItem{
			domain.NewQuoteItem("WIDGET01", 2, decimal.RequireFromString("10.00")),
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}
	quote.Recalculate(decimal.RequireFromString("0.1"))

	return quote
}

func TestQuoteHandler_Generate(t *testing.T) {
	handler, m := setupQuoteHandler(t)

	m.skus.EXPECT().GetByCode(mock.Anything, "WIDGET01").Return(catalogSKU("WIDGET01", "10.00"), nil)
	m.skus.EXPECT().GetByCode(mock.Anything, "GADGET01").Return(catalogSKU("GADGET01", "5.00"), nil)
	m.discount.EXPECT().Apply(mock.Anything, mock.Anything, "user-1").Return(decimal.Zero, nil)
	m.quotes.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	body := `{"items":[{"skuCode":"WIDGET01","quantity":2},{"skuCode":"GADGET01","quantity":1}]}`
	c, w := testContext(t, http.MethodPost, "/api/v1/quotes", body, "user-1")

	handler.Generate(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, "25.00", resp.Subtotal)
	assert.Equal(t, "2.50", resp.TaxAmount)
	assert.Equal(t, "27.50", resp.TotalAmount)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "20.00", resp.Items[0].LineTotal)
}

func TestQuoteHandler_Generate_ValidationFailure(t *testing.T) {
	handler, _ := setupQuoteHandler(t)

	c, w := testContext(t, http.MethodPost, "/api/v1/quotes", `{"items":[]}`, "user-1")

	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "items")
}

func TestQuoteHandler_Generate_UnknownSKU(t *testing.T) {
	handler, m := setupQuoteHandler(t)

	m.skus.EXPECT().GetByCode(mock.Anything, "NOSUCH01").
		Return(nil, domain.NewNotFoundError("sku", "NOSUCH01"))

	body := `{"items":[{"skuCode":"NOSUCH01","quantity":1}]}`
	c, w := testContext(t, http.MethodPost, "/api/v1/quotes", body, "user-1")

	handler.Generate(c)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
}

func TestQuoteHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		requester      string
		setupMock      func(m quoteHandlerMocks)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:      "success",
			requester: "user-1",
			setupMock: func(m quoteHandlerMocks) {
				m.quotes.EXPECT().GetByID(mock.Anything, "q-1").Return(storedQuote("q-1", "user-1"), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "not found",
			requester: "user-1",
			setupMock: func(m quoteHandlerMocks) {
				m.quotes.EXPECT().GetByID(mock.Anything, "q-1").
					Return(nil, domain.NewNotFoundError("quote", "q-1"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrorCodeNotFound,
		},
		{
			name:      "other owner is forbidden",
			requester: "user-2",
			setupMock: func(m quoteHandlerMocks) {
				m.quotes.EXPECT().GetByID(mock.Anything, "q-1").Return(storedQuote("q-1", "user-1"), nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   dto.ErrorCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := setupQuoteHandler(t)
			tt.setupMock(m)

			c, w := testContext(t, http.MethodGet, "/api/v1/quotes/q-1", "", tt.requester)
			c.Params = gin.Params{{Key: "id", Value: "q-1"}}

			handler.Get(c)

			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
			}
		})
	}
}

func TestQuoteHandler_Update_InvalidDiscountString(t *testing.T) {
	handler, _ := setupQuoteHandler(t)

	c, w := testContext(t, http.MethodPut, "/api/v1/quotes/q-1", `{"discountAmount":"ten"}`, "user-1")
	c.Params = gin.Params{{Key: "id", Value: "q-1"}}

	handler.Update(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "discountAmount")
}

func TestQuoteHandler_Delete(t *testing.T) {
	handler, m := setupQuoteHandler(t)

	m.quotes.EXPECT().GetByID(mock.Anything, "q-1").Return(storedQuote("q-1", "user-1"), nil)
	m.quotes.EXPECT().Delete(mock.Anything, "q-1").Return(nil)

	c, w := testContext(t, http.MethodDelete, "/api/v1/quotes/q-1", "", "user-1")
	c.Params = gin.Params{{Key: "id", Value: "q-1"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestQuoteHandler_List(t *testing.T) {
	handler, m := setupQuoteHandler(t)

	m.quotes.EXPECT().ListByUser(mock.Anything, "user-1", 1, 10).
		Return([]*domain.Quote{storedQuote("q-1", "user-1"), storedQuote("q-2", "user-1")}, nil)
	m.quotes.EXPECT().CountByUser(mock.Anything, "user-1").Return(int64(12), nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/quotes", "", "user-1")

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaginatedResponse[*QuoteResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, int64(12), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestQuoteHandler_Send_Conflict(t *testing.T) {
	handler, m := setupQuoteHandler(t)

	accepted := storedQuote("q-1", "user-1")
	accepted.Status = domain.QuoteStatusAccepted
	m.quotes.EXPECT().GetByID(mock.Anything, "q-1").Return(accepted, nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/quotes/q-1/send", "", "user-1")
	c.Params = gin.Params{{Key: "id", Value: "q-1"}}

	handler.Send(c)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeConflict, resp.Error.Code)
}

func TestQuoteHandler_Accept(t *testing.T) {
	handler, m := setupQuoteHandler(t)

	sent := storedQuote("q-1", "user-1")
	sent.Status = domain.QuoteStatusSent
	m.quotes.EXPECT().GetByID(mock.Anything, "q-1").Return(sent, nil)
	m.quotes.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/quotes/q-1/accept", "", "user-1")
	c.Params = gin.Params{{Key: "id", Value: "q-1"}}

	handler.Accept(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Status)
}

func TestQuoteHandler_RegisterQuoteRoutes(t *testing.T) {
	handler, _ := setupQuoteHandler(t)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterQuoteRoutes(api)

	expectedRoutes := []string{
		"POST /api/v1/quotes",
		"GET /api/v1/quotes",
		"GET /api/v1/quotes/:id",
		"PUT /api/v1/quotes/:id",
		"DELETE /api/v1/quotes/:id",
		"POST /api/v1/quotes/:id/send",
		"POST /api/v1/quotes/:id/accept",
		"POST /api/v1/quotes/:id/reject",
	}

	routeMap := make(map[string]bool)
	for _, r := range router.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range expectedRoutes {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}
