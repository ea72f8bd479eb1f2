package comments

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListComments returns a submission's comment thread, oldest first
// @Summary List comments
// @Tags Comments
// @Produce json
// @Param submission_id query string true "Submission id (member/week/name)"
// @Success 200 {array} models.Comment
// @Failure 400,500 {object} map[string]string
// @Router /comments [get]
func ListComments(c *gin.Context) {
	submissionID := c.Query("submission_id")
	if submissionID == "" {
		response.Error(c, http.StatusBadRequest, "submission_id query parameter is required")
		return
	}

	var comments []models.Comment
	if err := database.DB.Where("submission_id = ?", submissionID).
		Order("created_at asc").Find(&comments).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchFailed)
		return
	}
	response.Success(c, http.StatusOK, comments)
}

// CreateComment adds a comment to a submission's thread
// @Summary Create a comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param request body CreateCommentRequest true "Comment details"
// @Success 201 {object} models.Comment
// @Failure 400,401,500 {object} map[string]string
// @Router /comments [post]
func CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	avatar := c.GetString(middleware.ContextAvatarURL)
	comment := models.Comment{
		SubmissionID:   req.SubmissionID,
		UserID:         c.GetString(middleware.ContextUserID),
		GithubUsername: c.GetString(middleware.ContextGithubHandle),
		Content:        req.Content,
	}
	if avatar != "" {
		comment.GithubAvatar = &avatar
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSaveFailed)
		return
	}

	realtime.Notify(realtime.ChangeEvent{
		Topic:      realtime.CommentTopic(req.SubmissionID),
		UpdateType: "new",
	})
	c.JSON(http.StatusCreated, comment)
}

// UpdateComment edits a comment's content. Only the author may edit.
// @Summary Update a comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Comment id"
// @Param request body UpdateCommentRequest true "New content"
// @Success 200 {object} models.Comment
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /comments/{id} [put]
func UpdateComment(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, ok := ownedComment(c)
	if !ok {
		return
	}

	comment.Content = req.Content
	if err := database.DB.Save(&comment).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSaveFailed)
		return
	}

	realtime.Notify(realtime.ChangeEvent{
		Topic:      realtime.CommentTopic(comment.SubmissionID),
		UpdateType: "update",
	})
	response.Success(c, http.StatusOK, comment)
}

// DeleteComment removes a comment. Only the author may delete.
// @Summary Delete a comment
// @Tags Comments
// @Produce json
// @Param id path string true "Comment id"
// @Success 200 {object} map[string]bool
// @Failure 401,403,404,500 {object} map[string]string
// @Router /comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	comment, ok := ownedComment(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDeleteFailed)
		return
	}

	realtime.Notify(realtime.ChangeEvent{
		Topic:      realtime.CommentTopic(comment.SubmissionID),
		UpdateType: "delete",
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ownedComment loads the target comment and checks the caller authored it
func ownedComment(c *gin.Context) (models.Comment, bool) {
	var comment models.Comment
	if err := database.DB.Where("id = ?", c.Param("id")).First(&comment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, ErrCommentNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFetchFailed)
		}
		return models.Comment{}, false
	}

	if comment.UserID != c.GetString(middleware.ContextUserID) {
		response.Error(c, http.StatusForbidden, ErrNotCommentOwner)
		return models.Comment{}, false
	}
	return comment, true
}
