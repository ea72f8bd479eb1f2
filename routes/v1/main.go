package v1

import (
	"api/handlers/comments"
	"api/handlers/daily"
	"api/handlers/members"
	"api/handlers/submissions"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(600, 100) // 600 requests per minute, 100 burst
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	submissions.RegisterRoutes(v1)
	members.RegisterRoutes(v1)
	comments.RegisterRoutes(v1)
	daily.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
