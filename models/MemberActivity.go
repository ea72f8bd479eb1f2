package models

// MemberActivity is derived from repository commit history; never persisted
type MemberActivity struct {
	Dates  []string `json:"dates"` // distinct YYYY-MM-DD strings, sorted ascending
	Streak int      `json:"streak"`
}

// Activities maps a member id to its derived activity
type Activities map[string]MemberActivity
