package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/salesdesk/quote-service/internal/adapters/clients"
	"github.com/salesdesk/quote-service/internal/domain"
)

// ErrorResponse is the error envelope external services send back.
// Both the nested form (error.code/message) and the flat form
// (code/message) appear in the wild, so both are accepted.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail is the nested error payload.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// GetCode prefers the nested code over the flat one.
func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}
	return e.Code
}

// GetMessage prefers the nested message over the flat one.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	return e.Message
}

// Error codes external services use in response bodies.
const (
	ExternalCodeNotFound     = "NOT_FOUND"
	ExternalCodeConflict     = "CONFLICT"
	ExternalCodeValidation   = "VALIDATION_ERROR"
	ExternalCodeForbidden    = "FORBIDDEN"
	ExternalCodeUnauthorized = "UNAUTHORIZED"
)

// ParseErrorResponse decodes an error body, returning nil when the
// body is absent, malformed, or carries no code or message. Error
// translation must not fail on a garbage body.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetCode() == "" && errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError turns any failed call into a domain error. clientErr
// covers transport-level failures where no response exists; otherwise
// the status code decides, with the parsed error body supplying the
// message. entityID feeds the not-found error. A 2xx response maps
// to nil.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entityID string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation, entityID)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))
	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation, entityID string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, entityID)
	case status == http.StatusConflict:
		return domain.NewConflictError(serviceName, message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return validationError(errResp, message)
	case status == http.StatusForbidden:
		return domain.NewForbiddenError(operation, message)
	case status == http.StatusUnauthorized:
		return domain.NewForbiddenError(operation, "authentication required")
	case status == http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")
	case status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, message)
	default:
		// Remaining 4xx codes read as a rejected request.
		return domain.NewValidationError("", message)
	}
}

// validationError surfaces the first field-level detail when the body
// has one.
func validationError(errResp *ErrorResponse, message string) error {
	if errResp != nil {
		for field, msg := range errResp.Error.Details {
			return domain.NewValidationError(field, msg)
		}
	}

	return domain.NewValidationError("", message)
}

var statusMessages = map[int]string{
	http.StatusNotFound:           "resource not found",
	http.StatusConflict:           "resource conflict",
	http.StatusBadRequest:         "invalid request",
	http.StatusForbidden:          "access denied",
	http.StatusUnauthorized:       "authentication required",
	http.StatusTooManyRequests:    "rate limit exceeded",
	http.StatusServiceUnavailable: "service temporarily unavailable",
}

func defaultMessageForStatus(status int, operation string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}

	return fmt.Sprintf("%s failed with status %d", operation, status)
}

// MapExternalCode maps a body-level error code to a domain error, for
// services that put the real failure in the body of a 200.
func MapExternalCode(code, message, serviceName, operation, entityID string) error {
	switch code {
	case ExternalCodeNotFound:
		return domain.NewNotFoundError(serviceName, entityID)
	case ExternalCodeConflict:
		return domain.NewConflictError(serviceName, message)
	case ExternalCodeValidation:
		return domain.NewValidationError("", message)
	case ExternalCodeForbidden:
		return domain.NewForbiddenError(operation, message)
	case ExternalCodeUnauthorized:
		return domain.NewForbiddenError(operation, "authentication required")
	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}
