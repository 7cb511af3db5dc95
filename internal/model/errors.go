package model

import (
	"fmt"
	"net/http"
)

// APIError is the failure half of the API envelope. It carries the HTTP
// status to respond with, a human-readable message, and for validation
// failures one message per violated field constraint.
type APIError struct {
	Status  int      `json:"-"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// Common error constructors

// NewValidationError returns a 400 carrying one message per violation.
func NewValidationError(fieldErrors []FieldError) *APIError {
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fe.Message)
	}
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: "Validation error",
		Errors:  messages,
	}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "Internal server error"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}
