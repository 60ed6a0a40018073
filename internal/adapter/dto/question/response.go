package question

import "time"

// QuestionResponse represents an interview question in API responses.
// ReferenceText and Keywords are only filled on the detail endpoint so the
// list view does not hand candidates the ideal answer up front.
type QuestionResponse struct {
	ID            string    `json:"id"`
	Prompt        string    `json:"prompt"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty"`
	ReferenceText string    `json:"reference_text,omitempty"`
	Keywords      []string  `json:"keywords,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionListResponse represents a paginated list of questions
type QuestionListResponse struct {
	Questions  []*QuestionResponse `json:"questions"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}
