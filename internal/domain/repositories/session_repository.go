package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// SessionRepository defines the interface for practice session data access
type SessionRepository interface {
	// Create creates a new practice session
	Create(ctx context.Context, session *entities.Session) error

	// FindByID retrieves a session by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Session, error)

	// List retrieves sessions ordered by recency
	List(ctx context.Context, limit, offset int) ([]*entities.Session, int64, error)

	// Delete removes a session and its attempts
	Delete(ctx context.Context, id uuid.UUID) error
}
