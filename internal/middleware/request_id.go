package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

type traceIDCtxKey struct{}

// RequestID is a middleware that assigns a trace ID to each request. SMS
// forwarding apps retry aggressively, so accepting a caller-supplied trace
// ID lets retries of the same submission be correlated in the logs. The ID
// lands in the echo context, the request context, and the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), traceIDCtxKey{}, traceID)))
			res.Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// TraceIDFromContext extracts the trace ID from a request context.
// Returns empty string if not present.
func TraceIDFromContext(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDCtxKey{}).(string)
	if !ok {
		return ""
	}
	return traceID
}

// GetTraceID extracts the trace ID from the Echo context
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
