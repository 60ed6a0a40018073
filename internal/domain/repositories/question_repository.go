package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// QuestionRepository defines the interface for question bank access
type QuestionRepository interface {
	// Create creates a new question
	Create(ctx context.Context, question *entities.Question) error

	// Upsert inserts a question or refreshes its reference answer by prompt
	Upsert(ctx context.Context, question *entities.Question) error

	// FindByID retrieves a question by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Question, error)

	// List retrieves questions with filters and pagination
	List(ctx context.Context, filters QuestionFilters) ([]*entities.Question, int64, error)

	// Delete removes a question
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuestionFilters represents filter options for listing questions
type QuestionFilters struct {
	Category   string
	Difficulty string
	Limit      int
	Offset     int
}
