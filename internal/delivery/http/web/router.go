package web

import (
	"net/http"
	"strings"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
	SPA       http.Handler
}

// apiPrefixes are routes owned by the API. Unknown paths under them get a
// JSON 404 instead of the SPA fallback, so a typo in an API call never
// comes back as HTML.
var apiPrefixes = []string{"/email", "/healthz", "/downloads"}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(middleware.CORS(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok")
	})

	// Public routes (no auth anywhere on this service)
	NewContactHandler(r, deps.ContactUC)
	NewDownloadHandler(r, deps.Config.DownloadsDir)

	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Everything the API does not claim falls through to the SPA, so
	// client-side routes deep-link and refresh correctly.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.Error(c, http.StatusNotFound, "not found")
			return
		}
		if isAPIPath(c.Request.URL.Path) {
			response.Error(c, http.StatusNotFound, "not found")
			return
		}
		deps.SPA.ServeHTTP(c.Writer, c.Request)
	})

	return r
}

func isAPIPath(path string) bool {
	for _, prefix := range apiPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
