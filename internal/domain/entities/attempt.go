package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Attempt is one scored answer to one question. It stores the transcript,
// the per-dimension scores, the raw measurements behind them, and the
// generated feedback so a report can be re-rendered without re-scoring.
type Attempt struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID  uuid.UUID `json:"session_id" gorm:"type:uuid;not null;index"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`

	TranscriptText  string  `json:"transcript_text" gorm:"type:text"`
	DurationSeconds float64 `json:"duration_seconds" gorm:"type:numeric(8,2);default:0"`
	AudioObjectKey  string  `json:"audio_object_key,omitempty" gorm:"type:varchar(512)"`

	ContentScore       float64 `json:"content_score" gorm:"type:numeric(5,2);default:0"`
	DeliveryScore      float64 `json:"delivery_score" gorm:"type:numeric(5,2);default:0"`
	CommunicationScore float64 `json:"communication_score" gorm:"type:numeric(5,2);default:0"`
	VoiceScore         float64 `json:"voice_score" gorm:"type:numeric(5,2);default:0"`
	ConfidenceScore    float64 `json:"confidence_score" gorm:"type:numeric(5,2);default:0"`
	StructureScore     float64 `json:"structure_score" gorm:"type:numeric(5,2);default:0"`
	FinalScore         float64 `json:"final_score" gorm:"type:numeric(5,2);default:0"`

	Flags        datatypes.JSON `json:"flags,omitempty" gorm:"type:jsonb"`
	Measurements datatypes.JSON `json:"measurements,omitempty" gorm:"type:jsonb"`
	Star         datatypes.JSON `json:"star,omitempty" gorm:"type:jsonb"`

	Feedback       datatypes.JSON `json:"feedback,omitempty" gorm:"type:jsonb"`
	FeedbackSource string         `json:"feedback_source,omitempty" gorm:"type:varchar(20)"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (Attempt) TableName() string {
	return "attempts"
}

// NewAttempt creates a new attempt for a question within a session
func NewAttempt(sessionID, questionID uuid.UUID, transcriptText string, durationSeconds float64) *Attempt {
	return &Attempt{
		ID:              uuid.New(),
		SessionID:       sessionID,
		QuestionID:      questionID,
		TranscriptText:  transcriptText,
		DurationSeconds: durationSeconds,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

// SetReport copies a score report onto the attempt columns
func (a *Attempt) SetReport(report *ScoreReport) error {
	a.ContentScore = report.SubScores.Content
	a.DeliveryScore = report.SubScores.Delivery
	a.CommunicationScore = report.SubScores.Communication
	a.VoiceScore = report.SubScores.Voice
	a.ConfidenceScore = report.SubScores.Confidence
	a.StructureScore = report.SubScores.Structure
	a.FinalScore = report.FinalScore

	flags, err := json.Marshal(report.Flags)
	if err != nil {
		return err
	}
	a.Flags = datatypes.JSON(flags)

	measurements, err := json.Marshal(report.Measurements)
	if err != nil {
		return err
	}
	a.Measurements = datatypes.JSON(measurements)

	star, err := json.Marshal(report.Star)
	if err != nil {
		return err
	}
	a.Star = datatypes.JSON(star)
	return nil
}

// SetFeedback stores the generated feedback payload
func (a *Attempt) SetFeedback(payload *FeedbackPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	a.Feedback = datatypes.JSON(raw)
	a.FeedbackSource = string(payload.Source)
	return nil
}

// SubScores reassembles the per-dimension scores from the attempt columns
func (a *Attempt) SubScores() SubScores {
	return SubScores{
		Content:       a.ContentScore,
		Delivery:      a.DeliveryScore,
		Communication: a.CommunicationScore,
		Voice:         a.VoiceScore,
		Confidence:    a.ConfidenceScore,
		Structure:     a.StructureScore,
	}
}

// Report reassembles the full score report from the stored columns
func (a *Attempt) Report() (*ScoreReport, error) {
	report := &ScoreReport{
		SubScores:  a.SubScores(),
		FinalScore: a.FinalScore,
	}
	if len(a.Flags) > 0 {
		if err := json.Unmarshal(a.Flags, &report.Flags); err != nil {
			return nil, err
		}
	}
	if len(a.Measurements) > 0 {
		if err := json.Unmarshal(a.Measurements, &report.Measurements); err != nil {
			return nil, err
		}
	}
	if len(a.Star) > 0 {
		if err := json.Unmarshal(a.Star, &report.Star); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// FeedbackPayload decodes the stored feedback, or returns nil when absent
func (a *Attempt) FeedbackPayload() (*FeedbackPayload, error) {
	if len(a.Feedback) == 0 {
		return nil, nil
	}
	var payload FeedbackPayload
	if err := json.Unmarshal(a.Feedback, &payload); err != nil {
		return nil, err
	}
	payload.Normalize()
	return &payload, nil
}
