package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds baseline security headers to all responses,
// including the SPA assets:
// - MIME sniffing (X-Content-Type-Options)
// - Clickjacking (X-Frame-Options)
// - Referrer leakage (Referrer-Policy)
// - Browser feature access (Permissions-Policy)
// - HTTPS downgrade, production only (HSTS)
func SecurityHeaders(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")

		// DENY = never allow framing
		c.Header("X-Frame-Options", "DENY")

		// Send full URL to same origin, only the origin cross-origin
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Empty values = disable the feature entirely
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		// HSTS only makes sense behind TLS; local dev runs plain HTTP
		if production {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		c.Next()
	}
}
