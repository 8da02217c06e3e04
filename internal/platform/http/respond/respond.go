// Package respond writes the uniform error body used by every endpoint.
package respond

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/platform/http/middleware"
	"shop_backend/internal/shared/apperr"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status    int                 `json:"status"`
	Error     string              `json:"error"`
	Fields    []apperr.FieldError `json:"fields,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

const internalMessage = "internal server error"

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindTooManyRequests:
		return http.StatusTooManyRequests
	case apperr.KindUpstream:
		if e := asAppErr(err); e != nil && e.UpstreamStatus >= 400 {
			return e.UpstreamStatus
		}
		return http.StatusBadGateway
	case apperr.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error aborts the request with the status and body derived from err.
// Internal errors are logged with their cause but reported generically.
func Error(c *gin.Context, err error) {
	status := Status(err)
	body := ErrorResponse{Status: status, RequestID: middleware.RequestIDFrom(c)}

	if e := asAppErr(err); e != nil && status != http.StatusInternalServerError {
		body.Error = e.Message
		body.Fields = e.Fields
	} else if status == http.StatusServiceUnavailable {
		body.Error = "service temporarily unavailable"
	} else {
		body.Error = internalMessage
	}

	attrs := []any{
		"error", err,
		"status", status,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", body.RequestID,
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
	} else {
		slog.Warn("request rejected", attrs...)
	}

	c.AbortWithStatusJSON(status, body)
}

// Recovery turns panics into a 500 with the uniform body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		Error(c, apperr.New(apperr.KindInternal, internalMessage))
	})
}

func asAppErr(err error) *apperr.Error {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
