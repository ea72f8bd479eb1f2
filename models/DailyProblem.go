package models

import "time"

// DailyProblem represents one daily challenge row, independent of the file tree
type DailyProblem struct {
	ID            string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Date          string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_unique;column:date" json:"date"` // YYYY-MM-DD
	Source        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_unique" json:"source"`
	ProblemNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_daily_unique;column:problem_number" json:"problem_number"`
	ProblemTitle  string    `gorm:"type:varchar(255);not null;column:problem_title" json:"problem_title"`
	CreatedBy     string    `gorm:"type:varchar(255);not null;column:created_by" json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
