package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

const (
	// HeaderXRequestID is the canonical request ID header name.
	HeaderXRequestID = "X-Request-ID"

	// maxRequestIDLength limits request ID size to prevent unbounded memory usage.
	maxRequestIDLength = 128
)

// isValidRequestID validates a request ID for safe logging.
// Only printable ASCII (0x20-0x7E) is allowed so ids cannot inject log lines.
func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		c := id[i]
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// ResolveRequestID returns the first valid candidate, or a new UUIDv4.
func ResolveRequestID(candidates ...string) string {
	for _, id := range candidates {
		if isValidRequestID(id) {
			return id
		}
	}
	return uuid.NewString()
}

// RequestID returns Echo middleware that injects a request identifier.
// A valid incoming X-Request-ID header is reused; otherwise a UUIDv4 is generated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			reqID := ResolveRequestID(c.Request().Header.Get(HeaderXRequestID))

			c.Set("request_id", reqID)
			c.Response().Header().Set(HeaderXRequestID, reqID)

			return next(c)
		}
	}
}
