package models

import "time"

// Comment represents a discussion comment attached to a submission
type Comment struct {
	ID             string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	SubmissionID   string    `gorm:"type:varchar(255);not null;index;column:submission_id" json:"submission_id"`
	UserID         string    `gorm:"type:varchar(255);not null;column:user_id" json:"user_id"`
	GithubUsername string    `gorm:"type:varchar(255);not null;column:github_username" json:"github_username"`
	GithubAvatar   *string   `gorm:"type:varchar(512);column:github_avatar" json:"github_avatar"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
