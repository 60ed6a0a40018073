package presenter

import (
	"encoding/json"

	"github.com/interview-coach-team/interview-coach/internal/adapter/dto/question"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// ToQuestionResponse converts a Question entity to QuestionResponse DTO.
// The reference answer is only included when withReference is set; the list
// endpoint keeps it hidden so candidates answer before peeking.
func ToQuestionResponse(q *entities.Question, withReference bool) *question.QuestionResponse {
	if q == nil {
		return nil
	}

	response := &question.QuestionResponse{
		ID:         q.ID.String(),
		Prompt:     q.Prompt,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		CreatedAt:  q.CreatedAt,
	}

	if withReference {
		response.ReferenceText = q.ReferenceText

		var keywords []string
		if len(q.Keywords) > 0 {
			_ = json.Unmarshal(q.Keywords, &keywords)
		}
		response.Keywords = keywords
	}

	return response
}

// ToQuestionListResponse converts a slice of Question entities to QuestionListResponse
func ToQuestionListResponse(questions []*entities.Question, total int64, page, pageSize int) *question.QuestionListResponse {
	questionResponses := make([]*question.QuestionResponse, len(questions))
	for i, q := range questions {
		questionResponses[i] = ToQuestionResponse(q, false)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &question.QuestionListResponse{
		Questions:  questionResponses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
