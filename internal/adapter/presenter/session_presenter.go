package presenter

import (
	"github.com/interview-coach-team/interview-coach/internal/adapter/dto/session"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// ToSessionResponse converts a Session entity to SessionResponse DTO
func ToSessionResponse(s *entities.Session) *session.SessionResponse {
	if s == nil {
		return nil
	}

	return &session.SessionResponse{
		ID:         s.ID.String(),
		Candidate:  s.Candidate,
		TargetRole: s.TargetRole,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToSessionListResponse converts a slice of Session entities to SessionListResponse
func ToSessionListResponse(sessions []*entities.Session, total int64, page, pageSize int) *session.SessionListResponse {
	sessionResponses := make([]*session.SessionResponse, len(sessions))
	for i, s := range sessions {
		sessionResponses[i] = ToSessionResponse(s)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &session.SessionListResponse{
		Sessions:   sessionResponses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
