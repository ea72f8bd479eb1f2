package daily

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to daily challenges
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	daily := r.Group("/daily")
	{
		daily.GET("", ListDaily)
		daily.POST("", middleware.RequireAuth(), CreateDaily)
		daily.DELETE("/:id", middleware.RequireAuth(), DeleteDaily)
		daily.GET("/ws", DailyWebSocket)
	}
}
