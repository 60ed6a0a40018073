package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session groups the attempts of one practice run. A candidate opens a
// session, answers one or more questions, and reviews the reports afterwards.
type Session struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Candidate  string    `json:"candidate" gorm:"type:varchar(255);not null"`
	TargetRole string    `json:"target_role,omitempty" gorm:"type:varchar(255)"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (Session) TableName() string {
	return "sessions"
}

// NewSession creates a new practice session
func NewSession(candidate, targetRole string) *Session {
	return &Session{
		ID:         uuid.New(),
		Candidate:  candidate,
		TargetRole: targetRole,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}
