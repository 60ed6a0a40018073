package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	"github.com/interview-coach-team/interview-coach/internal/domain/repositories"
)

// Service defines the question bank use case
type Service interface {
	// GetQuestion retrieves a question by ID
	GetQuestion(ctx context.Context, id uuid.UUID) (*entities.Question, error)

	// ListQuestions retrieves questions with filters
	ListQuestions(ctx context.Context, filters repositories.QuestionFilters) ([]*entities.Question, int64, error)
}

type questionService struct {
	questionRepo repositories.QuestionRepository
}

// NewQuestionService creates a new question bank service
func NewQuestionService(questionRepo repositories.QuestionRepository) Service {
	return &questionService{questionRepo: questionRepo}
}

// GetQuestion retrieves a question by ID
func (s *questionService) GetQuestion(ctx context.Context, id uuid.UUID) (*entities.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

// ListQuestions retrieves questions with filters
func (s *questionService) ListQuestions(ctx context.Context, filters repositories.QuestionFilters) ([]*entities.Question, int64, error) {
	questions, total, err := s.questionRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, total, nil
}
