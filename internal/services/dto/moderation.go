package dto

import "time"

type ModeratorResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type ApplicationResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Comments  string     `json:"comments,omitempty"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
}

type AbuseReportResponse struct {
	ID            string    `json:"id"`
	LoggedBy      string    `json:"logged_by"`
	LoggedAgainst string    `json:"logged_against"`
	Comments      string    `json:"comments"`
	CreatedAt     time.Time `json:"created_at"`
}

type ModerationLogResponse struct {
	ID         string    `json:"id"`
	Moderator  string    `json:"moderator"`
	TargetUser string    `json:"target_user"`
	MsgType    string    `json:"msg_type"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
