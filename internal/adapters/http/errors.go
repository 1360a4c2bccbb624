package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/salesdesk/quote-service/internal/adapters/http/dto"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/platform/logging"
)

// MapDomainError translates a domain error into an HTTP status and
// error envelope. Errors outside the domain taxonomy become a generic
// 500 so internals never reach the client.
func MapDomainError(err error) (int, *dto.ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		resp := dto.NewErrorResponse(dto.ErrorCodeValidation, err.Error())
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}
		return http.StatusBadRequest, resp

	case domain.IsForbidden(err):
		return http.StatusForbidden, dto.NewErrorResponse(dto.ErrorCodeForbidden, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, dto.NewErrorResponse(dto.ErrorCodeUnavailable, err.Error())

	default:
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred")
	}
}

// RespondWithError maps err and writes the envelope. Internal errors
// are additionally logged with their real cause.
func RespondWithError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	attachTraceID(c, errResp)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}

// RespondWithErrorCode writes an envelope for adapter-level failures
// that have no domain error behind them.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message)
	attachTraceID(c, errResp)
	c.JSON(dto.HTTPStatusFromCode(code), errResp)
}

// RespondWithValidationErrors writes a 400 carrying field-level details.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	errResp := dto.NewErrorResponseWithDetails(
		dto.ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	)
	attachTraceID(c, errResp)
	c.JSON(http.StatusBadRequest, errResp)
}

// AbortWithError is RespondWithError for middleware: it also stops the
// handler chain.
func AbortWithError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	attachTraceID(c, errResp)
	c.AbortWithStatusJSON(status, errResp)
}

// AbortWithErrorCode is RespondWithErrorCode for middleware.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message)
	attachTraceID(c, errResp)
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), errResp)
}

func attachTraceID(c *gin.Context, errResp *dto.ErrorResponse) {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}
}
