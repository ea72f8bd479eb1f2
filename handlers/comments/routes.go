package comments

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to comments
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	comments := r.Group("/comments")
	{
		comments.GET("", ListComments)
		comments.POST("", middleware.RequireAuth(), CreateComment)
		comments.PUT("/:id", middleware.RequireAuth(), UpdateComment)
		comments.DELETE("/:id", middleware.RequireAuth(), DeleteComment)
		comments.GET("/ws/*submissionId", CommentWebSocket)
	}
}
