package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode identifies an application error class
type ErrorCode string

// String returns the string form of the code
func (c ErrorCode) String() string {
	return string(c)
}

// Error codes
const (
	ErrorCode_INTERNAL               ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT       ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_INPUT          ErrorCode = "INVALID_INPUT"
	ErrorCode_NOT_FOUND              ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS         ErrorCode = "ALREADY_EXISTS"
	ErrorCode_VALIDATION_FAILED      ErrorCode = "VALIDATION_FAILED"
	ErrorCode_PROVIDER_QUOTA         ErrorCode = "PROVIDER_QUOTA"
	ErrorCode_PROVIDER_FATAL         ErrorCode = "PROVIDER_FATAL"
	ErrorCode_PROVIDER_SCHEMA        ErrorCode = "PROVIDER_SCHEMA"
	ErrorCode_EMBEDDINGS_UNAVAILABLE ErrorCode = "EMBEDDINGS_UNAVAILABLE"
	ErrorCode_TRANSCRIPTION_FAILED   ErrorCode = "TRANSCRIPTION_FAILED"
	ErrorCode_STORAGE_FAILED         ErrorCode = "STORAGE_FAILED"
	ErrorCode_CACHE_FAILED           ErrorCode = "CACHE_FAILED"
	ErrorCode_DB_CONNECTION_FAILED   ErrorCode = "DB_CONNECTION_FAILED"
	ErrorCode_DB_QUERY_FAILED        ErrorCode = "DB_QUERY_FAILED"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped error to errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

// ErrInvalidInput marks an unscorable submission (empty transcript,
// malformed reference data). Surfaced to callers as a result flag.
func ErrInvalidInput(reason string) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_INVALID_INPUT,
		Message:  "Submission cannot be scored",
	}.WithDetail("reason", reason)
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrAlreadyExists(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_ALREADY_EXISTS,
		Message:  fmt.Sprintf("%s already exists", resource),
	}
}

func ErrValidationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION_FAILED,
		Message:  "Request validation failed",
	}
}

// Provider Errors

// ErrProviderQuota marks a transient throttling/quota failure from the
// feedback model provider. Handled by credential rotation, never surfaced.
func ErrProviderQuota(credentialIndex int, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrorCode_PROVIDER_QUOTA,
		Message:  "Model provider quota exceeded",
	}.WithDetail("credential_index", fmt.Sprintf("%d", credentialIndex))
}

// ErrProviderFatal marks a non-retryable provider failure (auth, permanent
// rejection). Handled by falling back to templated feedback.
func ErrProviderFatal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_PROVIDER_FATAL,
		Message:  "Model provider request failed",
	}
}

// ErrProviderSchema marks a structurally invalid provider response.
func ErrProviderSchema(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_PROVIDER_SCHEMA,
		Message:  "Model provider returned malformed response",
	}
}

// ErrEmbeddingsUnavailable marks the embedding service as unreachable.
// The semantic scorer degrades to its neutral default on this.
func ErrEmbeddingsUnavailable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_EMBEDDINGS_UNAVAILABLE,
		Message:  "Embedding service unavailable",
	}
}

func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

// Integration Errors

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

// Database Errors

func ErrDBConnectionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_CONNECTION_FAILED,
		Message:  "Database connection failed",
	}
}

func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}

// retryableMarkers are the provider failure signatures that allow another
// credential to be tried. Quota-style failures put the credential on cooldown.
var retryableMarkers = []string{
	"429",
	"rate limit",
	"rate_limit",
	"too many requests",
	"quota",
	"resource exhausted",
	"resource_exhausted",
	"503",
	"unavailable",
	"overloaded",
	"timeout",
	"deadline exceeded",
	"connection reset",
	"connection refused",
	"temporary failure",
}

// IsRetryableProvider reports whether a provider call failure is transient
// throttling/availability and worth retrying on another credential.
func IsRetryableProvider(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, marker := range retryableMarkers {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}

// IsQuotaExhausted reports whether the failure specifically indicates the
// credential's quota is spent, warranting an extended cooldown.
func IsQuotaExhausted(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	for _, marker := range []string{"429", "quota", "resource exhausted", "resource_exhausted"} {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}
