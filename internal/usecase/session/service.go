package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	"github.com/interview-coach-team/interview-coach/internal/domain/repositories"
)

// CreateSessionInput represents input for opening a practice session
type CreateSessionInput struct {
	Candidate  string
	TargetRole string
	Notes      string
}

// Service defines the practice session use case
type Service interface {
	// CreateSession opens a new practice session
	CreateSession(ctx context.Context, input CreateSessionInput) (*entities.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, id uuid.UUID) (*entities.Session, error)

	// ListSessions retrieves sessions, newest first
	ListSessions(ctx context.Context, limit, offset int) ([]*entities.Session, int64, error)

	// DeleteSession removes a session, its attempts, and its stored clips
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

// ClipStore removes stored audio clips when their session goes away.
type ClipStore interface {
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	RemoveFile(ctx context.Context, objectName string) error
}

type sessionService struct {
	sessionRepo repositories.SessionRepository
	clipStore   ClipStore
	logger      *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo repositories.SessionRepository, clipStore ClipStore, logger *zap.Logger) Service {
	return &sessionService{
		sessionRepo: sessionRepo,
		clipStore:   clipStore,
		logger:      logger,
	}
}

// CreateSession opens a new practice session
func (s *sessionService) CreateSession(ctx context.Context, input CreateSessionInput) (*entities.Session, error) {
	if strings.TrimSpace(input.Candidate) == "" {
		return nil, entities.ErrEmptyCandidate
	}

	session := entities.NewSession(strings.TrimSpace(input.Candidate), strings.TrimSpace(input.TargetRole))
	session.Notes = strings.TrimSpace(input.Notes)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Practice session created",
			zap.String("session_id", session.ID.String()),
			zap.String("candidate", session.Candidate),
		)
	}
	return session, nil
}

// GetSession retrieves a session by ID
func (s *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*entities.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions retrieves sessions, newest first
func (s *sessionService) ListSessions(ctx context.Context, limit, offset int) ([]*entities.Session, int64, error) {
	sessions, total, err := s.sessionRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, total, nil
}

// DeleteSession removes a session, its attempts, and its stored clips
func (s *sessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSession(ctx, id); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.removeClips(ctx, id)
	return nil
}

// removeClips clears the audio/<session>/ prefix in object storage. The
// session row is already gone, so failures are logged and not returned.
func (s *sessionService) removeClips(ctx context.Context, id uuid.UUID) {
	if s.clipStore == nil {
		return
	}
	prefix := fmt.Sprintf("audio/%s/", id)
	keys, err := s.clipStore.ListFiles(ctx, prefix)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to list session clips for cleanup",
				zap.String("session_id", id.String()),
				zap.Error(err),
			)
		}
		return
	}
	for _, key := range keys {
		if err := s.clipStore.RemoveFile(ctx, key); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to remove session clip",
					zap.String("object_key", key),
					zap.Error(err),
				)
			}
		}
	}
}
