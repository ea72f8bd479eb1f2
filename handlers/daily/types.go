package daily

// Constants for error messages
const (
	ErrDailyNotFound   = "Daily challenge not found"
	ErrNotRosterMember = "Only study-group members can manage daily challenges"
	ErrFetchFailed     = "Failed to fetch daily challenges"
	ErrSaveFailed      = "Failed to save daily challenge"
	ErrDeleteFailed    = "Failed to delete daily challenge"
	ErrDuplicate       = "That problem is already registered for this date"
)

// CreateDailyRequest is the body of POST /daily
type CreateDailyRequest struct {
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Source        string `json:"source" binding:"required,oneof=swea boj etc"`
	ProblemNumber string `json:"problem_number" binding:"required"`
	ProblemTitle  string `json:"problem_title" binding:"required"`
}
