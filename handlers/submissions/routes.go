package submissions

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the gateway and read routes for submissions
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	// Gateway surface: the only writers to the content store
	r.POST("/submit", middleware.RequireAuth(), Submit)
	r.POST("/delete", middleware.RequireAuth(), Delete)

	subs := r.Group("/submissions")
	{
		subs.GET("", ListSubmissions)
		subs.GET("/weeks", ListWeeks)
		subs.GET("/file", GetFile)
		subs.GET("/matrix", GetMatrix)
		subs.GET("/others", GetOtherSolutions)
	}
}
