package web

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// RequestIDHeader carries the per-request id back to the client
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with an id, reusing the client's when present.
// The id is stored in the context under "request_id".
func RequestIDMiddleware(c rweb.Context) error {
	reqID := c.Request().Header(RequestIDHeader)
	if reqID == "" {
		reqID = uuid.New().String()
	}

	c.Set("request_id", reqID)
	c.Response().SetHeader(RequestIDHeader, reqID)

	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Everything, the stylesheet included, is served from our own origin
	csp := []string{
		"default-src 'self'",
		"style-src 'self'",
		"img-src 'self' data:",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()
	reqID, _ := c.Get("request_id").(string)

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"request_id", reqID,
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"request_id", reqID,
		"duration", time.Since(start).String(),
	)

	return err
}
