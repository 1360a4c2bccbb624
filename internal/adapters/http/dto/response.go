package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/salesdesk/quote-service/internal/domain"
)

// GetTraceID extracts the trace ID for error responses.
// The context value set by middleware wins; the request ID header is
// the fallback for requests that bypassed tracing.
func GetTraceID(c *gin.Context) string {
	if v, exists := c.Get("trace_id"); exists {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}

	return c.GetHeader("X-Request-ID")
}

// HandleError maps a domain error to an HTTP error response and writes
// it to the context. Unknown errors get a generic message to avoid
// leaking internals.
func HandleError(c *gin.Context, err error) {
	var code, message string

	switch {
	case domain.IsNotFound(err):
		code = ErrorCodeNotFound
		message = err.Error()
	case domain.IsConflict(err):
		code = ErrorCodeConflict
		message = err.Error()
	case domain.IsValidation(err):
		code = ErrorCodeValidation
		message = err.Error()
	case domain.IsForbidden(err):
		code = ErrorCodeForbidden
		message = err.Error()
	case domain.IsUnavailable(err):
		code = ErrorCodeUnavailable
		message = "service temporarily unavailable"
	default:
		code = ErrorCodeInternal
		message = "an internal error occurred"
	}

	resp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))
	c.JSON(HTTPStatusFromCode(code), resp)
}
