package services

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrCVNotFound      = errors.New("cv not found")
	ErrJobRoleNotFound = errors.New("job role not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrRateLimited     = errors.New("rate limit exceeded")
	ErrQuotaExhausted  = errors.New("ai credits exhausted")
)

const (
	msgRateLimited    = "Rate limit exceeded. Please try again later."
	msgQuotaExhausted = "AI credits exhausted. Please add credits to continue."
	msgParseFailed    = "Failed to parse AI response"
	msgMissingInput   = "Job description and CV texts are required"
)

// ValidationError carries a message that is safe to show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ScoringError is the error surface of the scoring function. Status is the
// HTTP status the function answers with.
type ScoringError struct {
	Status  int
	Message string
	Err     error
}

func (e *ScoringError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

// DecodeError reports a field of the model's reply that is missing or has the
// wrong type.
type DecodeError struct {
	Index  int
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return "reply: " + e.Reason
	}
	if e.Field == "" {
		return fmt.Sprintf("result %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("result %d: field %q %s", e.Index, e.Field, e.Reason)
}

// UpstreamError is a non-2xx reply from the model provider that has no more
// specific meaning.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI gateway error: %d", e.StatusCode)
}

// toScoringError maps any failure inside the scoring function onto the
// function's status codes.
func toScoringError(err error) *ScoringError {
	var se *ScoringError
	if errors.As(err, &se) {
		return se
	}

	switch {
	case errors.Is(err, ErrRateLimited):
		return &ScoringError{Status: http.StatusTooManyRequests, Message: msgRateLimited, Err: err}
	case errors.Is(err, ErrQuotaExhausted):
		return &ScoringError{Status: http.StatusPaymentRequired, Message: msgQuotaExhausted, Err: err}
	case errors.Is(err, ErrValidation):
		return &ScoringError{Status: http.StatusBadRequest, Message: err.Error()}
	}

	return &ScoringError{Status: http.StatusInternalServerError, Message: err.Error()}
}
