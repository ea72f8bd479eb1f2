package members

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers roster and derived-view routes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	r.GET("/members", ListMembers)
	r.GET("/members/:id/submissions", GetMemberSubmissions)
	r.GET("/activity", GetActivity)

	leaderboard := r.Group("/leaderboard")
	{
		leaderboard.GET("", GetLeaderboard)
		leaderboard.GET("/export", ExportLeaderboard)
	}
}
