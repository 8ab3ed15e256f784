package response

import (
	"errors"
	"net/http"

	"mobile-wallet-core/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is echoed on every response path.
const HeaderRequestID = "X-Request-Id"

// CtxRequestID is the gin context key holding the trace id.
const CtxRequestID = "request_id"

// Envelope is the standard success body: {data, meta?}.
type Envelope struct {
	Data any  `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries list pagination info.
type Meta struct {
	NextCursor *string `json:"nextCursor,omitempty"`
	Limit      *int    `json:"limit,omitempty"`
}

// Problem is the RFC-7807-style error body, served as
// application/problem+json.
type Problem struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

// OK sends a 200 response with data in the envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

// OKList sends a 200 response promoting list pagination into meta.
func OKList(c *gin.Context, items any, nextCursor *string, limit int) {
	c.JSON(http.StatusOK, Envelope{
		Data: items,
		Meta: &Meta{NextCursor: nextCursor, Limit: &limit},
	})
}

// Created sends a 201 response with data in the envelope. A non-empty
// location is set as the Location header.
func Created(c *gin.Context, location string, data any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends a problem+json response. *apperror.AppError maps to its
// code and status; anything else becomes INTERNAL.
func Error(c *gin.Context, err error) {
	appErr := &apperror.AppError{}
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	WriteProblem(c, appErr)
}

// WriteProblem renders an AppError as application/problem+json.
func WriteProblem(c *gin.Context, appErr *apperror.AppError) {
	problem := Problem{
		Type:    "about:blank",
		Title:   http.StatusText(appErr.HTTPStatus),
		Status:  appErr.HTTPStatus,
		Detail:  appErr.Message,
		Code:    appErr.Code,
		TraceID: GetRequestID(c),
	}
	c.Header("Content-Type", "application/problem+json")
	c.JSON(appErr.HTTPStatus, problem)
}

// GetRequestID retrieves the trace id from context, or generates one.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(CtxRequestID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
