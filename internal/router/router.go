package router

import (
	"net/http"

	"eksemail/internal/common"
	"eksemail/internal/config"
	"eksemail/internal/domain/notification"
	"eksemail/internal/middleware"

	"github.com/gin-gonic/gin"
)

// New creates and configures the Gin router with all middleware and routes.
func New(
	cfg *config.Config,
	notificationHandler *notification.Handler,
) *gin.Engine {
	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	// Global middleware stack (order matters)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	// Rate limiter
	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimit.RequestsPerSecond,
		cfg.RateLimit.Burst,
	)
	r.Use(rateLimiter.Middleware())

	r.Use(gin.Logger())

	// Public routes
	r.GET("/health", healthCheck)

	// API routes. X-API-Key is enforced only when keys are configured; the
	// usual caller is the backend platform's trigger function, which sits
	// inside the same trust boundary.
	api := r.Group("/api/v1")
	if len(cfg.Auth.APIKeys) > 0 {
		api.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	notificationHandler.RegisterRoutes(api)

	return r
}

// healthCheck handles GET /health
func healthCheck(c *gin.Context) {
	common.Data(c, http.StatusOK, gin.H{
		"status":  "ok",
		"service": "eksemail",
	})
}
