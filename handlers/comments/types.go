package comments

// Constants for error messages
const (
	ErrCommentNotFound = "Comment not found"
	ErrNotCommentOwner = "You can only modify your own comments"
	ErrFetchFailed     = "Failed to fetch comments"
	ErrSaveFailed      = "Failed to save comment"
	ErrDeleteFailed    = "Failed to delete comment"
)

// CreateCommentRequest is the body of POST /comments
type CreateCommentRequest struct {
	SubmissionID string `json:"submission_id" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

// UpdateCommentRequest is the body of PUT /comments/:id
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
