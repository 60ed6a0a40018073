package session

// CreateSessionRequest represents the request to open a practice session
type CreateSessionRequest struct {
	Candidate  string `json:"candidate" validate:"required,min=1,max=255"`
	TargetRole string `json:"target_role,omitempty" validate:"omitempty,max=255"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ListSessionsRequest represents query parameters for listing sessions
type ListSessionsRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}
