package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrInternal        ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrNotFound        ErrorCode = "NOT_FOUND"
	ErrProfileRequired ErrorCode = "PROFILE_REQUIRED"

	ErrTopicNotFound   ErrorCode = "TOPIC_NOT_FOUND"
	ErrProviderFailure ErrorCode = "PROVIDER_FAILURE"
	ErrStorageFailure  ErrorCode = "STORAGE_FAILURE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper constructors for common errors

func NewTopicNotFoundError(topicID string) *DomainError {
	return NewError(ErrTopicNotFound, fmt.Sprintf("Topic not found: %s", topicID), nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewProfileRequiredError() *DomainError {
	return NewError(ErrProfileRequired, "An onboarded profile is required", nil)
}

// NewProviderError wraps a failure of the generative-AI provider: network,
// quota, or a response that did not conform to the expected schema. Services
// convert these into typed fallback values; they never reach a handler.
func NewProviderError(err error) *DomainError {
	return NewError(ErrProviderFailure, "Generative provider request failed", err)
}

func NewStorageError(message string, err error) *DomainError {
	return NewError(ErrStorageFailure, message, err)
}
