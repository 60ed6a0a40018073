package attempt

import (
	"encoding/json"
	"time"
)

// ScoresResponse carries the six sub-scores on the 0-100 scale
type ScoresResponse struct {
	Content       float64 `json:"content"`
	Delivery      float64 `json:"delivery"`
	Communication float64 `json:"communication"`
	Voice         float64 `json:"voice"`
	Confidence    float64 `json:"confidence"`
	Structure     float64 `json:"structure"`
}

// AttemptResponse represents a scored attempt in API responses.
// Flags, measurements, STAR analysis and feedback are emitted exactly as
// stored, so a report rendered later matches the one produced at submit time.
type AttemptResponse struct {
	ID              string  `json:"id"`
	SessionID       string  `json:"session_id"`
	QuestionID      string  `json:"question_id"`
	TranscriptText  string  `json:"transcript_text"`
	DurationSeconds float64 `json:"duration_seconds"`
	AudioURL        string  `json:"audio_url,omitempty"`

	Scores     ScoresResponse `json:"scores"`
	FinalScore float64        `json:"final_score"`

	Flags        json.RawMessage `json:"flags,omitempty"`
	Measurements json.RawMessage `json:"measurements,omitempty"`
	Star         json.RawMessage `json:"star,omitempty"`

	Feedback       json.RawMessage `json:"feedback,omitempty"`
	FeedbackSource string          `json:"feedback_source,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AttemptSummaryResponse is the compact shape used in session history lists
type AttemptSummaryResponse struct {
	ID         string          `json:"id"`
	QuestionID string          `json:"question_id"`
	Scores     ScoresResponse  `json:"scores"`
	FinalScore float64         `json:"final_score"`
	Flags      json.RawMessage `json:"flags,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AttemptListResponse represents a paginated session history
type AttemptListResponse struct {
	Attempts   []*AttemptSummaryResponse `json:"attempts"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
	TotalPages int                       `json:"total_pages"`
}
