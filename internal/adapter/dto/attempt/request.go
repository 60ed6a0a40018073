package attempt

// SubmitAttemptRequest represents an answer submission. JSON bodies carry a
// ready transcript; multipart submissions carry the same fields as form
// values plus the recorded clip under the "audio" file field.
type SubmitAttemptRequest struct {
	SessionID       string                `json:"session_id" form:"session_id" validate:"required,uuid"`
	QuestionID      string                `json:"question_id" form:"question_id" validate:"required,uuid"`
	TranscriptText  string                `json:"transcript_text" form:"transcript_text" validate:"omitempty,max=20000"`
	DurationSeconds float64               `json:"duration_seconds" form:"duration_seconds" validate:"omitempty,min=0"`
	Audio           *AudioFeaturesRequest `json:"audio_features,omitempty"`
}

// AudioFeaturesRequest is the acoustic summary measured from the recorded
// clip. Voice and confidence scoring fall back to neutral bands when it is
// absent, so every field is optional.
type AudioFeaturesRequest struct {
	PitchMean    float64 `json:"pitch_mean" validate:"omitempty,min=0"`
	PitchStdev   float64 `json:"pitch_stdev" validate:"omitempty,min=0"`
	EnergyMean   float64 `json:"energy_mean"`
	EnergyStdev  float64 `json:"energy_stdev" validate:"omitempty,min=0"`
	SilenceRatio float64 `json:"silence_ratio" validate:"omitempty,min=0,max=1"`
}

// ListAttemptsRequest represents query parameters for a session's history
type ListAttemptsRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}
