package attempt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/interview-coach-team/interview-coach/errors"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	"github.com/interview-coach-team/interview-coach/internal/domain/repositories"
	"github.com/interview-coach-team/interview-coach/internal/usecase/feedback"
	"github.com/interview-coach-team/interview-coach/internal/usecase/scoring"
)

// Transcriber turns an uploaded audio clip into a transcript. Implemented by
// the AssemblyAI client; callers may send transcript text directly instead.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (*entities.Transcript, error)
}

// AudioStore persists submitted audio clips and serves playback URLs.
type AudioStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// AudioClip is an uploaded audio file held in memory. The bytes are read
// twice, once for object storage and once for transcription.
type AudioClip struct {
	Data        []byte
	Filename    string
	ContentType string
}

// SubmitInput carries one spoken answer to one question.
type SubmitInput struct {
	SessionID  uuid.UUID
	QuestionID uuid.UUID
	Transcript entities.Transcript
	Audio      *entities.AudioFeatures
	Clip       *AudioClip
}

// Service defines the attempt use case: submit an answer through the full
// scoring and feedback pipeline, then read the results back.
type Service interface {
	// Submit validates, transcribes when needed, scores, generates feedback
	// and persists one attempt
	Submit(ctx context.Context, input SubmitInput) (*entities.Attempt, error)

	// GetAttempt retrieves a scored attempt by ID
	GetAttempt(ctx context.Context, id uuid.UUID) (*entities.Attempt, error)

	// ListBySession retrieves a session's attempts, newest first
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*entities.Attempt, int64, error)

	// AudioURL returns a presigned playback URL for the attempt's audio clip
	AudioURL(ctx context.Context, a *entities.Attempt) (string, error)
}

type attemptService struct {
	attemptRepo   repositories.AttemptRepository
	sessionRepo   repositories.SessionRepository
	questionRepo  repositories.QuestionRepository
	scorer        scoring.Service
	feedback      feedback.Service
	transcriber   Transcriber
	audioStore    AudioStore
	presignExpiry time.Duration
	logger        *zap.Logger
}

// NewAttemptService wires the submission pipeline. Transcriber and audioStore
// are optional; without them only direct transcript submissions are served.
func NewAttemptService(
	attemptRepo repositories.AttemptRepository,
	sessionRepo repositories.SessionRepository,
	questionRepo repositories.QuestionRepository,
	scorer scoring.Service,
	feedbackService feedback.Service,
	transcriber Transcriber,
	audioStore AudioStore,
	presignExpiry time.Duration,
	logger *zap.Logger,
) Service {
	return &attemptService{
		attemptRepo:   attemptRepo,
		sessionRepo:   sessionRepo,
		questionRepo:  questionRepo,
		scorer:        scorer,
		feedback:      feedbackService,
		transcriber:   transcriber,
		audioStore:    audioStore,
		presignExpiry: presignExpiry,
		logger:        logger,
	}
}

// Submit runs one answer through the pipeline. Unscorable input (an empty
// transcript) still produces a persisted attempt: all-zero scores, the
// invalid-input flag and templated feedback, never an error.
func (s *attemptService) Submit(ctx context.Context, input SubmitInput) (*entities.Attempt, error) {
	if _, err := s.sessionRepo.FindByID(ctx, input.SessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	question, err := s.questionRepo.FindByID(ctx, input.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	transcript := input.Transcript
	if transcript.IsEmpty() && input.Clip != nil && s.transcriber != nil {
		result, err := s.transcriber.Transcribe(ctx, bytes.NewReader(input.Clip.Data))
		if err != nil {
			return nil, apperrors.ErrTranscriptionFailed(err)
		}
		// An explicitly submitted duration wins over the measured one.
		if transcript.DurationSeconds > 0 {
			result.DurationSeconds = transcript.DurationSeconds
		}
		transcript = *result
	}

	attempt := entities.NewAttempt(input.SessionID, input.QuestionID, transcript.Text, transcript.DurationSeconds)

	if input.Clip != nil && s.audioStore != nil {
		objectKey := clipObjectKey(input.SessionID, attempt.ID, input.Clip.Filename)
		uploadErr := s.audioStore.UploadFile(ctx, objectKey, bytes.NewReader(input.Clip.Data), int64(len(input.Clip.Data)), input.Clip.ContentType)
		if uploadErr != nil {
			// The clip is a playback copy, not a scoring input.
			if s.logger != nil {
				s.logger.Warn("⚠️ Audio clip upload failed, continuing without playback copy",
					zap.String("object_key", objectKey),
					zap.Error(uploadErr),
				)
			}
		} else {
			attempt.AudioObjectKey = objectKey
		}
	}

	report, err := s.scorer.Score(ctx, transcript, input.Audio, question.Reference())
	if err != nil {
		return nil, err
	}
	if err := attempt.SetReport(report); err != nil {
		return nil, fmt.Errorf("failed to encode score report: %w", err)
	}

	var payload *entities.FeedbackPayload
	if report.Flags.InvalidInput {
		// Nothing for the model to coach on; the templated payload already
		// explains the empty answer.
		payload = feedback.Fallback(report.SubScores, report.Star, report.Flags)
	} else {
		payload = s.feedback.Generate(ctx, feedback.Request{
			Question:      question.Prompt,
			Transcript:    transcript.Text,
			ReferenceText: question.ReferenceText,
			Scores:        report.SubScores,
			Flags:         report.Flags,
			Star:          report.Star,
		})
	}
	if err := attempt.SetFeedback(payload); err != nil {
		return nil, fmt.Errorf("failed to encode feedback: %w", err)
	}

	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Attempt submitted",
			zap.String("attempt_id", attempt.ID.String()),
			zap.String("session_id", attempt.SessionID.String()),
			zap.Float64("final_score", attempt.FinalScore),
			zap.String("feedback_source", attempt.FeedbackSource),
		)
	}
	return attempt, nil
}

// GetAttempt retrieves a scored attempt by ID
func (s *attemptService) GetAttempt(ctx context.Context, id uuid.UUID) (*entities.Attempt, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return attempt, nil
}

// ListBySession retrieves a session's attempts, newest first
func (s *attemptService) ListBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*entities.Attempt, int64, error) {
	if _, err := s.sessionRepo.FindByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, entities.ErrSessionNotFound
		}
		return nil, 0, fmt.Errorf("failed to get session: %w", err)
	}

	attempts, total, err := s.attemptRepo.FindBySessionID(ctx, sessionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, total, nil
}

// AudioURL returns a presigned playback URL for the attempt's audio clip
func (s *attemptService) AudioURL(ctx context.Context, a *entities.Attempt) (string, error) {
	if a.AudioObjectKey == "" || s.audioStore == nil {
		return "", entities.ErrAudioNotAvailable
	}
	url, err := s.audioStore.GetFileURL(ctx, a.AudioObjectKey, s.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign audio url: %w", err)
	}
	return url, nil
}

// clipObjectKey lays out stored clips as audio/<session>/<attempt><ext>
func clipObjectKey(sessionID, attemptID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("audio/%s/%s%s", sessionID, attemptID, ext)
}
