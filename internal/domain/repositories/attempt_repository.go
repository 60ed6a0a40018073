package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// AttemptRepository defines the interface for scored attempt data access
type AttemptRepository interface {
	// Create persists a scored attempt
	Create(ctx context.Context, attempt *entities.Attempt) error

	// FindByID retrieves an attempt by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Attempt, error)

	// FindBySessionID retrieves a session's attempts, newest first
	FindBySessionID(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*entities.Attempt, int64, error)

	// Update saves changes to an existing attempt
	Update(ctx context.Context, attempt *entities.Attempt) error

	// Delete removes an attempt
	Delete(ctx context.Context, id uuid.UUID) error
}
