package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents different types of errors that can occur
type ErrorCategory string

const (
	// Parameter or construction problems that make a run impossible
	ErrorCategoryValidation ErrorCategory = "VALIDATION"

	// The fitness function produced a value the engine cannot order
	ErrorCategoryEvaluation ErrorCategory = "EVALUATION"

	// Parent selection was asked to run on an invalid population state
	ErrorCategorySelection ErrorCategory = "SELECTION"
)

// EngineError represents a categorized error with context
type EngineError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *EngineError) Unwrap() error {
	return e.Underlying
}

// NewEngineError creates a new categorized engine error
func NewEngineError(category ErrorCategory, component, operation, message string) *EngineError {
	return &EngineError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// NewValidationError creates a validation error for a bad parameter
func NewValidationError(component, operation, message string) *EngineError {
	return NewEngineError(ErrorCategoryValidation, component, operation, message)
}

// NewEvaluationError creates an evaluation error for a non-finite fitness value
func NewEvaluationError(component, operation, message string) *EngineError {
	return NewEngineError(ErrorCategoryEvaluation, component, operation, message)
}

// NewSelectionError creates a selection error for an invalid population state
func NewSelectionError(component, operation, message string) *EngineError {
	return NewEngineError(ErrorCategorySelection, component, operation, message)
}

// WrapError wraps an existing error with engine error context
func WrapError(err error, category ErrorCategory, component, operation string) *EngineError {
	return &EngineError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    err.Error(),
		Underlying: err,
	}
}

// IsCategory reports whether err is an EngineError of the given category
func IsCategory(err error, category ErrorCategory) bool {
	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return engineErr.Category == category
	}
	return false
}
