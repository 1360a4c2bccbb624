package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/quote-service/internal/adapters/clients"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/platform/config"
)

func flagServiceConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: "feature-flags",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
	}
}

func errorBody(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestMapHTTPError_StatusCodes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		isMatch func(error) bool
		message string
	}{
		{
			name:    "404 becomes not found",
			status:  http.StatusNotFound,
			body:    `{"error":{"code":"NOT_FOUND","message":"model not found"}}`,
			isMatch: domain.IsNotFound,
		},
		{
			name:    "409 becomes conflict",
			status:  http.StatusConflict,
			body:    `{"error":{"code":"CONFLICT","message":"session already exists"}}`,
			isMatch: domain.IsConflict,
		},
		{
			name:    "403 becomes forbidden",
			status:  http.StatusForbidden,
			body:    `{"error":{"message":"insufficient permissions"}}`,
			isMatch: domain.IsForbidden,
		},
		{
			name:    "401 also becomes forbidden",
			status:  http.StatusUnauthorized,
			body:    `{}`,
			isMatch: domain.IsForbidden,
		},
		{
			name:    "500 becomes unavailable",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"message":"internal error"}}`,
			isMatch: domain.IsUnavailable,
		},
		{
			name:    "429 becomes unavailable with rate limit message",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			isMatch: domain.IsUnavailable,
			message: "rate limit",
		},
		{
			name:    "502 becomes unavailable",
			status:  http.StatusBadGateway,
			body:    `{}`,
			isMatch: domain.IsUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.status, Body: errorBody(tt.body)}

			err := MapHTTPError(resp, nil, "ai-model", "chat completion", "gpt-4o-mini")

			require.Error(t, err)
			assert.True(t, tt.isMatch(err), "wrong domain error type: %v", err)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestMapHTTPError_NotFoundCarriesEntityID(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       errorBody(`{"error":{"code":"NOT_FOUND","message":"model not found"}}`),
	}

	err := MapHTTPError(resp, nil, "ai-model", "chat completion", "gpt-4o-mini")

	var notFoundErr *domain.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "gpt-4o-mini", notFoundErr.ID)
}

func TestMapHTTPError_ValidationDetailsSurfaceField(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body: errorBody(`{
			"error": {
				"code": "VALIDATION_ERROR",
				"message": "validation failed",
				"details": {"model": "unknown model"}
			}
		}`),
	}

	err := MapHTTPError(resp, nil, "ai-model", "chat completion", "")

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "model", validationErr.Field)
}

func TestMapHTTPError_ClientErrors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		message   string
	}{
		{"open breaker", clients.ErrCircuitOpen, "circuit breaker open"},
		{"retries exhausted", clients.ErrMaxRetriesExceeded, "max retries exceeded"},
		{"other transport failure", errors.New("connection reset"), "connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(nil, tt.clientErr, "ai-model", "chat completion", "")

			require.Error(t, err)
			assert.True(t, domain.IsUnavailable(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestMapHTTPError_SuccessReturnsNil(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusOK, Body: errorBody(`{}`)}

	assert.NoError(t, MapHTTPError(resp, nil, "ai-model", "chat completion", ""))
}

func TestMapHTTPError_NilResponse(t *testing.T) {
	err := MapHTTPError(nil, nil, "ai-model", "chat completion", "")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "no response received")
}

func TestMapExternalCode(t *testing.T) {
	tests := []struct {
		code    string
		isMatch func(error) bool
	}{
		{ExternalCodeNotFound, domain.IsNotFound},
		{ExternalCodeConflict, domain.IsConflict},
		{ExternalCodeValidation, domain.IsValidation},
		{ExternalCodeForbidden, domain.IsForbidden},
		{ExternalCodeUnauthorized, domain.IsForbidden},
		{"SOMETHING_ELSE", domain.IsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := MapExternalCode(tt.code, "flag lookup failed", "feature-flags", "evaluate flag", "allow-edit-non-draft")
			require.Error(t, err)
			assert.True(t, tt.isMatch(err), "wrong domain error type for %s: %v", tt.code, err)
		})
	}
}

func TestMapExternalCode_NotFoundCarriesEntityID(t *testing.T) {
	err := MapExternalCode(ExternalCodeNotFound, "flag not found", "feature-flags", "evaluate flag", "allow-edit-non-draft")

	var notFoundErr *domain.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "allow-edit-non-draft", notFoundErr.ID)
}

func TestDecodeResponse(t *testing.T) {
	type flagState struct {
		Key     string `json:"key"`
		Enabled bool   `json:"enabled"`
	}

	t.Run("decodes valid body", func(t *testing.T) {
		body := errorBody(`{"key":"allow-edit-non-draft","enabled":true}`)

		result, err := DecodeResponse[flagState](body)

		require.NoError(t, err)
		assert.Equal(t, "allow-edit-non-draft", result.Key)
		assert.True(t, result.Enabled)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		_, err := DecodeResponse[flagState](errorBody(`not json`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding response")
	})

	t.Run("rejects nil body", func(t *testing.T) {
		_, err := DecodeResponse[flagState](nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil")
	})
}

func TestTranslateSlice(t *testing.T) {
	type extLine struct{ Qty int }
	type line struct{ Quantity int }

	translate := func(ext *extLine) (*line, error) {
		if ext.Qty < 0 {
			return nil, domain.NewValidationError("quantity", "must be positive")
		}
		return &line{Quantity: ext.Qty}, nil
	}

	t.Run("translates each item", func(t *testing.T) {
		result, err := TranslateSlice([]extLine{{1}, {2}, {3}}, translate)

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, 2, result[1].Quantity)
	})

	t.Run("first failure names the item", func(t *testing.T) {
		_, err := TranslateSlice([]extLine{{1}, {-1}, {3}}, translate)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		result, err := TranslateSlice([]extLine{}, translate)

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestTranslateMap(t *testing.T) {
	type extFlag struct{ On bool }
	type flag struct{ Enabled bool }

	result, err := TranslateMap(map[string]extFlag{
		"allow-edit-non-draft": {On: true},
		"strict-pricing":       {On: false},
	}, func(ext *extFlag) (*flag, error) {
		return &flag{Enabled: ext.On}, nil
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result["allow-edit-non-draft"].Enabled)
	assert.False(t, result["strict-pricing"].Enabled)
}

func TestValidateRequired(t *testing.T) {
	err := ValidateRequired("", "skuCode")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	assert.NoError(t, ValidateRequired("WIDGET01", "skuCode"))
}

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{0, true},
		{-1, true},
		{1, false},
		{100, false},
	}

	for _, tt := range tests {
		err := ValidatePositive(tt.value, "quantity")
		if tt.wantErr {
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		body        io.Reader
		wantNil     bool
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nested format",
			body:        strings.NewReader(`{"error":{"code":"NOT_FOUND","message":"flag not found"}}`),
			wantCode:    "NOT_FOUND",
			wantMessage: "flag not found",
		},
		{
			name:        "flat format",
			body:        strings.NewReader(`{"code":"CONFLICT","message":"already exists"}`),
			wantCode:    "CONFLICT",
			wantMessage: "already exists",
		},
		{name: "malformed body", body: strings.NewReader(`not json`), wantNil: true},
		{name: "empty envelope", body: strings.NewReader(`{}`), wantNil: true},
		{name: "nil body", body: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ParseErrorResponse(tt.body)

			if tt.wantNil {
				assert.Nil(t, resp)
				return
			}
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.GetCode())
			assert.Equal(t, tt.wantMessage, resp.GetMessage())
		})
	}
}

func TestBaseAdapter_Accessors(t *testing.T) {
	client, err := clients.New(flagServiceConfig("http://flags.internal"))
	require.NoError(t, err)

	adapter := NewBaseAdapter(client, "feature-flags")

	assert.Equal(t, "feature-flags", adapter.ServiceName())
	assert.NotNil(t, adapter.Client())
}
