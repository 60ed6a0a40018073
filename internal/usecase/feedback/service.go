package feedback

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/interview-coach-team/interview-coach/errors"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// State names one step of a feedback request's lifecycle.
type State string

// Bridge states. Every request walks Idle → Selecting-Credential → Calling
// and ends in exactly one of the three terminal states.
const (
	StateIdle                State = "idle"
	StateSelectingCredential State = "selecting_credential"
	StateCalling             State = "calling"
	StateSuccess             State = "success"
	StateRetryableFailure    State = "retryable_failure"
	StateFatalFailure        State = "fatal_failure"
)

var errAllCredentialsCooling = errors.New("all credentials cooling down")

// Request carries everything the bridge needs for one feedback generation.
type Request struct {
	Question      string
	Transcript    string
	ReferenceText string
	Scores        entities.SubScores
	Flags         entities.ScoreFlags
	Star          entities.StarAnalysis
}

// Provider makes a single model call with a specific credential and returns
// the raw model text.
type Provider interface {
	GenerateFeedback(ctx context.Context, apiKey string, prompt string) (string, error)
}

// Service defines the feedback bridge. Generate never returns an error: when
// the provider cannot serve, the deterministic fallback payload does.
type Service interface {
	Generate(ctx context.Context, req Request) *entities.FeedbackPayload
}

type bridgeService struct {
	provider Provider
	pool     *CredentialPool
	parser   *Parser
	timeout  time.Duration
	logger   *zap.Logger
}

// NewFeedbackService constructs the bridge over a provider and a credential pool
func NewFeedbackService(provider Provider, pool *CredentialPool, timeout time.Duration, logger *zap.Logger) Service {
	return &bridgeService{
		provider: provider,
		pool:     pool,
		parser:   NewParser(),
		timeout:  timeout,
		logger:   logger,
	}
}

// Generate walks the request through the state machine. Attempts are bounded
// by the pool size: one call per credential at most, rotating round-robin
// from wherever the previous request left the cursor.
func (s *bridgeService) Generate(ctx context.Context, req Request) *entities.FeedbackPayload {
	state := StateIdle
	prompt := buildPrompt(req)

	maxAttempts := s.pool.Size()
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		state = s.transition(state, StateSelectingCredential, -1, attempt, nil)
		idx, key, ok := s.pool.Acquire()
		if !ok {
			state = s.transition(state, StateFatalFailure, -1, attempt, errAllCredentialsCooling)
			break
		}
		state = s.transition(state, StateCalling, idx, attempt, nil)

		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		raw, err := s.provider.GenerateFeedback(callCtx, key, prompt)
		cancel()

		if err == nil {
			payload, parseErr := s.parser.Parse(raw)
			if parseErr != nil {
				// The credential worked; the response shape did not.
				s.pool.MarkSuccess(idx)
				state = s.transition(state, StateFatalFailure, idx, attempt, parseErr)
				break
			}
			s.pool.MarkSuccess(idx)
			s.transition(state, StateSuccess, idx, attempt, nil)
			payload.Source = entities.FeedbackSourceModel
			payload.DegradedNotes = degradedNotes(req.Flags)
			payload.Normalize()
			return payload
		}

		if apperrors.IsRetryableProvider(err) {
			s.pool.MarkRetryable(idx, apperrors.IsQuotaExhausted(err))
			state = s.transition(state, StateRetryableFailure, idx, attempt, err)
			continue
		}

		state = s.transition(state, StateFatalFailure, idx, attempt, err)
		break
	}

	if s.logger != nil {
		s.logger.Warn("🛟 Returning templated fallback feedback",
			zap.String("state", string(state)))
	}
	return Fallback(req.Scores, req.Star, req.Flags)
}

// transition logs every state change with the credential and attempt involved
// and returns the new state.
func (s *bridgeService) transition(from, to State, credentialIndex, attempt int, err error) State {
	if s.logger == nil {
		return to
	}
	fields := []zap.Field{
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Int("attempt", attempt),
	}
	if credentialIndex >= 0 {
		fields = append(fields, zap.Int("credential_index", credentialIndex))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	switch to {
	case StateSuccess:
		s.logger.Info("✅ Feedback bridge transition", fields...)
	case StateRetryableFailure:
		s.logger.Warn("⚠️ Feedback bridge transition", fields...)
	case StateFatalFailure:
		s.logger.Error("❌ Feedback bridge transition", fields...)
	default:
		s.logger.Debug("🤖 Feedback bridge transition", fields...)
	}
	return to
}
