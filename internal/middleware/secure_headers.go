package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// contentPolicy admits the inline script and styles of the HTML screens and
// nothing from other origins.
const contentPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; frame-ancestors 'none'"

type SecureHeaderOptions struct {
	// HSTS is only sent when the service is reached over TLS.
	HSTS bool
}

// SecureHeaders hardens every response. JSON under /api carries client
// contact data and is never cached.
func SecureHeaders(opts SecureHeaderOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		h.Set("Content-Security-Policy", contentPolicy)
		if opts.HSTS {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			h.Set("Cache-Control", "no-store")
		}
		c.Next()
	}
}
