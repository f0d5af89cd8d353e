package middleware

import (
	"go-portfolio-backend/config"

	"github.com/gin-gonic/gin"
)

// CORS adds CORS headers for cross-origin requests from the frontend.
//
// The middleware is strict about allowed origins:
// - Origins listed in ALLOWED_ORIGINS are always allowed
// - Local dev servers (Vite, CRA) are allowed outside production
// - Anything else gets no CORS headers and a 403 on preflight
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowedOrigins := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowedOrigins[origin] = true
	}

	// Development origins (only outside production)
	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:5173": true,
		"http://127.0.0.1:5173": true,
	}

	isProduction := cfg.IsProduction()

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool

		if allowedOrigins[origin] {
			isAllowed = true
		}

		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		// Empty origin (same-origin requests, curl) - allow
		if origin == "" {
			isAllowed = true
		}

		// Only set headers if the origin is allowed; otherwise the browser
		// blocks the response on its own.
		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
