package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/salesdesk/quote-service/internal/adapters/clients"
	"github.com/salesdesk/quote-service/internal/domain"
)

// BaseAdapter carries the request plumbing shared by every adapter:
// the resilient HTTP client plus error translation on each call.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter wraps client for the named external service.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the external service's name.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// mapResult translates a client call's outcome. On success the caller
// owns the returned body and must close it.
func (a *BaseAdapter) mapResult(resp *http.Response, err error, operation string) (io.ReadCloser, error) {
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation, "")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()
		return nil, MapHTTPError(resp, nil, a.serviceName, operation, "")
	}

	return resp.Body, nil
}

// DoRequest executes req and returns the response body, or a domain
// error. operation names the call for error messages.
func (a *BaseAdapter) DoRequest(ctx context.Context, req *http.Request, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Do(ctx, req)
	return a.mapResult(resp, err, operation)
}

// Get issues a GET against an absolute path.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path)
	return a.mapResult(resp, err, operation)
}

// Post issues a POST against an absolute path.
func (a *BaseAdapter) Post(ctx context.Context, path string, body io.Reader, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Post(ctx, path, body)
	return a.mapResult(resp, err, operation)
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidateRequired rejects empty strings coming out of external DTOs.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}
	return nil
}

// ValidatePositive rejects zero or negative numeric fields.
func ValidatePositive[T ~int | ~int64 | ~float64](value T, fieldName string) error {
	if value <= 0 {
		return domain.NewValidationError(fieldName, "must be positive")
	}
	return nil
}

// Translator converts one external DTO into a domain value, failing
// with a domain error when the external data is invalid.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice runs translate over items, stopping at the first
// failure with the item's index wrapped in.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]*D, error) {
	result := make([]*D, 0, len(items))
	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}
		result = append(result, translated)
	}
	return result, nil
}

// TranslateMap runs translate over a keyed collection.
func TranslateMap[E any, D any](items map[string]E, translate Translator[E, D]) (map[string]*D, error) {
	result := make(map[string]*D, len(items))
	for key, item := range items {
		translated, err := translate(&item)
		if err != nil {
			return nil, fmt.Errorf("translating key %s: %w", key, err)
		}
		result[key] = translated
	}
	return result, nil
}
