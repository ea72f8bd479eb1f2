package submissions

import (
	"net/http"
	"strings"

	"api/config"
	"api/github"
	"api/metrics"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Delete removes one submission file the caller owns
// @Summary Delete a submission
// @Description Removes a solution file from the study repository. Only the owning member may delete a path under its namespace.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body DeleteRequest true "Path to delete"
// @Success 200 {object} map[string]bool
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /delete [post]
func Delete(c *gin.Context) {
	if !config.MutationConfigured() {
		response.Error(c, http.StatusInternalServerError, ErrServerConfig)
		return
	}

	memberID, member, ok := resolveCaller(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Path == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingPath)
		return
	}

	if !strings.HasPrefix(req.Path, memberID+"/") {
		response.Error(c, http.StatusForbidden, ErrNotOwnPath)
		return
	}

	meta, err := github.Default.FileMeta(c.Request.Context(), req.Path)
	if err != nil {
		if github.NotFound(err) {
			response.Error(c, http.StatusNotFound, ErrDeleteTargetMissing)
			return
		}
		upstreamError(c, "delete", err)
		return
	}

	filename := req.Path[strings.LastIndex(req.Path, "/")+1:]
	message := "Delete " + filename + " by " + member.Name
	if err := github.Default.DeleteFile(c.Request.Context(), req.Path, message, meta.SHA, commitAuthor(member)); err != nil {
		upstreamError(c, "delete", err)
		return
	}
	invalidateAfterMutation(req.Path)
	metrics.SubmissionCounter.WithLabelValues("delete", "success").Inc()

	c.JSON(http.StatusOK, gin.H{"success": true})
}
