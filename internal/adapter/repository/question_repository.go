package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	"github.com/interview-coach-team/interview-coach/internal/domain/repositories"
)

// questionRepository implements the QuestionRepository interface
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question bank repository
func NewQuestionRepository(db *gorm.DB) repositories.QuestionRepository {
	return &questionRepository{db: db}
}

// Create creates a new question
func (r *questionRepository) Create(ctx context.Context, question *entities.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// Upsert inserts a question or refreshes its reference answer by prompt.
// Used by the seed script so reseeding stays idempotent.
func (r *questionRepository) Upsert(ctx context.Context, question *entities.Question) error {
	keywords := string(question.Keywords)
	if keywords == "" {
		keywords = "[]"
	}

	q := `INSERT INTO questions (id, prompt, reference_text, keywords, category, difficulty, created_at, updated_at)
        VALUES (?, ?, ?, ?::jsonb, ?, ?, NOW(), NOW())
        ON CONFLICT (prompt) DO UPDATE SET reference_text = EXCLUDED.reference_text, keywords = EXCLUDED.keywords, category = EXCLUDED.category, difficulty = EXCLUDED.difficulty, updated_at = NOW()`

	return r.db.WithContext(ctx).Exec(q, question.ID, question.Prompt, question.ReferenceText, keywords, question.Category, question.Difficulty).Error
}

// FindByID retrieves a question by its ID
func (r *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Question, error) {
	var question entities.Question
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&question).Error

	if err != nil {
		return nil, err
	}
	return &question, nil
}

// List retrieves questions with filters and pagination
func (r *questionRepository) List(ctx context.Context, filters repositories.QuestionFilters) ([]*entities.Question, int64, error) {
	var questions []*entities.Question
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Question{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Difficulty != "" {
		query = query.Where("difficulty = ?", filters.Difficulty)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at ASC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&questions).Error
	return questions, total, err
}

// Delete removes a question
func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Question{}, id).Error
}
