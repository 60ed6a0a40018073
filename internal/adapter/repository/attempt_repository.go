package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	"github.com/interview-coach-team/interview-coach/internal/domain/repositories"
)

// attemptRepository implements the AttemptRepository interface
type attemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository creates a new scored attempt repository
func NewAttemptRepository(db *gorm.DB) repositories.AttemptRepository {
	return &attemptRepository{db: db}
}

// Create persists a scored attempt
func (r *attemptRepository) Create(ctx context.Context, attempt *entities.Attempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

// FindByID retrieves an attempt by its ID
func (r *attemptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Attempt, error) {
	var attempt entities.Attempt
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&attempt).Error

	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// FindBySessionID retrieves a session's attempts, newest first
func (r *attemptRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*entities.Attempt, int64, error) {
	var attempts []*entities.Attempt
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entities.Attempt{}).
		Where("session_id = ?", sessionID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&attempts).Error
	return attempts, total, err
}

// Update saves changes to an existing attempt
func (r *attemptRepository) Update(ctx context.Context, attempt *entities.Attempt) error {
	return r.db.WithContext(ctx).Save(attempt).Error
}

// Delete removes an attempt
func (r *attemptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Attempt{}, id).Error
}
