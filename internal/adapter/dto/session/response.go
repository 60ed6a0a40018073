package session

import "time"

// SessionResponse represents a practice session in API responses
type SessionResponse struct {
	ID         string    `json:"id"`
	Candidate  string    `json:"candidate"`
	TargetRole string    `json:"target_role,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SessionListResponse represents a paginated list of sessions
type SessionListResponse struct {
	Sessions   []*SessionResponse `json:"sessions"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
