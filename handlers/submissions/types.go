package submissions

// Constants for error messages
const (
	ErrAuthRequired      = "Authentication required"
	ErrNotRosterMember   = "Only study-group members can submit code"
	ErrNotOwnPath        = "You can only modify your own submissions"
	ErrMissingFields     = "Source, problem number and code are all required"
	ErrInvalidSource     = "Source must be \"swea\" or \"boj\""
	ErrInvalidNumber     = "Problem number must be digits only"
	ErrEmptyCode         = "Code must not be empty"
	ErrInvalidWeek       = "Week must match the YY-MM-wN pattern"
	ErrEditTargetMissing = "File to edit was not found"
	ErrDeleteTargetMissing = "File was not found"
	ErrMissingPath       = "A file path to delete is required"
	ErrServerConfig      = "Server configuration error"
	ErrRosterUnavailable = "Could not load the member roster"
	ErrUpstream          = "Content store error"
)

// SubmitRequest is the body of POST /submit. Week overrides the current
// period; EditPath switches the request into edit mode.
type SubmitRequest struct {
	Source        string `json:"source"`
	ProblemNumber string `json:"problemNumber"`
	Code          string `json:"code"`
	Week          string `json:"week,omitempty"`
	EditPath      string `json:"editPath,omitempty"`
}

// SubmitResponse reports the committed location of a submission
type SubmitResponse struct {
	Success  bool   `json:"success"`
	Path     string `json:"path"`
	MemberID string `json:"memberId"`
	Week     string `json:"week"`
	Name     string `json:"name"`
}

// DeleteRequest is the body of POST /delete
type DeleteRequest struct {
	Path string `json:"path"`
}
