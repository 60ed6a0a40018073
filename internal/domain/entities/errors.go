package entities

import "errors"

// Domain errors
var (
	// Question errors
	ErrQuestionNotFound = errors.New("question not found")
	ErrEmptyPrompt      = errors.New("question prompt is empty")
	ErrEmptyReference   = errors.New("reference answer is empty")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyCandidate  = errors.New("candidate name is empty")

	// Attempt errors
	ErrAttemptNotFound   = errors.New("attempt not found")
	ErrAttemptNotScored  = errors.New("attempt has not been scored")
	ErrEmptyTranscript   = errors.New("transcript is empty")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrAudioNotAvailable = errors.New("audio features not available")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)
