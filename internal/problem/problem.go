// Package problem renders errors as RFC 7807 problem details. Every failing
// HTTP response, including those written by middleware, goes through Write.
package problem

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/logger"
)

const ContentType = "application/problem+json"

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Details is the problem document. Code and Errors are extensions.
type Details struct {
	Type      string              `json:"type"`
	Title     string              `json:"title"`
	Status    int                 `json:"status"`
	Detail    string              `json:"detail,omitempty"`
	Instance  string              `json:"instance,omitempty"`
	Code      string              `json:"code"`
	Errors    []apperr.FieldError `json:"errors,omitempty"`
	RequestID string              `json:"requestId,omitempty"`
}

// New builds a problem for an explicit status.
func New(status int, code, detail string) Details {
	return Details{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Code:   code,
	}
}

// FromError classifies err. Unknown errors become a 500 without leaking the
// underlying message.
func FromError(err error) Details {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		d := New(http.StatusUnprocessableEntity, "validation_failed", "one or more fields are invalid")
		d.Errors = verr.Errors
		return d
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return New(http.StatusNotFound, apperr.Code(err, "not_found"), err.Error())
	case errors.Is(err, apperr.ErrConflict):
		return New(http.StatusConflict, apperr.Code(err, "conflict"), err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		return New(http.StatusUnauthorized, apperr.Code(err, "unauthorized"), err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return New(http.StatusForbidden, apperr.Code(err, "forbidden"), err.Error())
	case errors.Is(err, apperr.ErrRateLimited):
		return New(http.StatusTooManyRequests, "rate_limited", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return New(http.StatusServiceUnavailable, "timeout", "the request took too long")
	default:
		return New(http.StatusInternalServerError, "internal_error", "an unexpected error occurred")
	}
}

// Write aborts the request with the problem for err.
func Write(c *gin.Context, err error) {
	d := FromError(err)
	if d.Status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
			"error", err,
		)
	}

	var rl *apperr.RateLimitError
	if errors.As(err, &rl) {
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(rl.RetryAfter.Seconds()))))
	}
	_ = c.Error(err)
	Abort(c, d)
}

// Abort writes d and stops the handler chain.
func Abort(c *gin.Context, d Details) {
	if d.Instance == "" {
		d.Instance = c.Request.URL.Path
	}
	d.RequestID = c.GetString(RequestIDKey)
	c.Header("Content-Type", ContentType)
	c.AbortWithStatusJSON(d.Status, d)
}
