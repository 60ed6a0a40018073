package presenter

import (
	"encoding/json"

	"github.com/interview-coach-team/interview-coach/internal/adapter/dto/attempt"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// ToAttemptResponse converts an Attempt entity to AttemptResponse DTO.
// audioURL is the presigned playback link, empty when no clip was stored.
func ToAttemptResponse(a *entities.Attempt, audioURL string) *attempt.AttemptResponse {
	if a == nil {
		return nil
	}

	return &attempt.AttemptResponse{
		ID:              a.ID.String(),
		SessionID:       a.SessionID.String(),
		QuestionID:      a.QuestionID.String(),
		TranscriptText:  a.TranscriptText,
		DurationSeconds: a.DurationSeconds,
		AudioURL:        audioURL,
		Scores:          toScoresResponse(a.SubScores()),
		FinalScore:      a.FinalScore,
		Flags:           json.RawMessage(a.Flags),
		Measurements:    json.RawMessage(a.Measurements),
		Star:            json.RawMessage(a.Star),
		Feedback:        json.RawMessage(a.Feedback),
		FeedbackSource:  a.FeedbackSource,
		CreatedAt:       a.CreatedAt,
	}
}

// ToAttemptSummaryResponse converts an Attempt entity to the compact list shape
func ToAttemptSummaryResponse(a *entities.Attempt) *attempt.AttemptSummaryResponse {
	if a == nil {
		return nil
	}

	return &attempt.AttemptSummaryResponse{
		ID:         a.ID.String(),
		QuestionID: a.QuestionID.String(),
		Scores:     toScoresResponse(a.SubScores()),
		FinalScore: a.FinalScore,
		Flags:      json.RawMessage(a.Flags),
		CreatedAt:  a.CreatedAt,
	}
}

// ToAttemptListResponse converts a slice of Attempt entities to AttemptListResponse
func ToAttemptListResponse(attempts []*entities.Attempt, total int64, page, pageSize int) *attempt.AttemptListResponse {
	attemptResponses := make([]*attempt.AttemptSummaryResponse, len(attempts))
	for i, a := range attempts {
		attemptResponses[i] = ToAttemptSummaryResponse(a)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &attempt.AttemptListResponse{
		Attempts:   attemptResponses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func toScoresResponse(s entities.SubScores) attempt.ScoresResponse {
	return attempt.ScoresResponse{
		Content:       s.Content,
		Delivery:      s.Delivery,
		Communication: s.Communication,
		Voice:         s.Voice,
		Confidence:    s.Confidence,
		Structure:     s.Structure,
	}
}
