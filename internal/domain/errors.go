package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeConflict     ErrorCode = "CONFLICT"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Auth specific errors
	CodeEmailTaken         ErrorCode = "EMAIL_ALREADY_REGISTERED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Content specific errors
	CodeExamNotFound     ErrorCode = "EXAM_NOT_FOUND"
	CodeMaterialNotFound ErrorCode = "MATERIAL_NOT_FOUND"
	CodeMissionNotFound  ErrorCode = "MISSION_NOT_FOUND"

	// Mission progression errors
	CodeQuestionMismatch ErrorCode = "QUESTION_MISMATCH"
	CodeMissionCompleted ErrorCode = "MISSION_ALREADY_COMPLETED"
	CodeProgressConflict ErrorCode = "PROGRESS_CONFLICT"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
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
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithContext attaches key/value detail surfaced to clients in the error body.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Helper functions for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewEmailTakenError() *DomainError {
	return NewError(CodeEmailTaken, "Email is already registered", nil)
}

// NewInvalidCredentialsError is deliberately identical for unknown email
// and wrong password so the API cannot be used for user enumeration.
func NewInvalidCredentialsError() *DomainError {
	return NewError(CodeInvalidCredentials, "Invalid email or password", nil)
}

func NewExamNotFoundError(slug string) *DomainError {
	return NewError(CodeExamNotFound, fmt.Sprintf("Exam not found: %s", slug), nil)
}

func NewMaterialNotFoundError(slug string) *DomainError {
	return NewError(CodeMaterialNotFound, fmt.Sprintf("Material not found: %s", slug), nil)
}

func NewMissionNotFoundError(slug string) *DomainError {
	return NewError(CodeMissionNotFound, fmt.Sprintf("Mission not found: %s", slug), nil)
}

func NewQuestionMismatchError(submitted, expected int) *DomainError {
	return NewError(CodeQuestionMismatch,
		fmt.Sprintf("Question %d is not the current question", submitted), nil).
		WithContext("expected_question_number", expected)
}

func NewMissionCompletedError(slug string) *DomainError {
	return NewError(CodeMissionCompleted, fmt.Sprintf("Mission already completed: %s", slug), nil)
}

// NewProgressConflictError signals that a concurrent submission advanced the
// progress row first; the losing request surfaces this without retrying.
func NewProgressConflictError() *DomainError {
	return NewError(CodeProgressConflict, "Progress was updated concurrently", nil)
}
