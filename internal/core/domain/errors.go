// Package domain defines the core domain models for cribcrack.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a recovery error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "CC-ARG-1001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates a precondition on the inputs failed.
	// It is raised before any candidate is tried.
	ErrInvalidArgument = NewDomainError("CC-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required input is missing.
	ErrMissingArgument = NewDomainError("CC-ARG-1002", "missing required argument")
)

// ============================================================================
// Alphabet Errors (ALPH)
// ============================================================================

var (
	// ErrAlphabetViolation indicates a ciphertext character outside the
	// closed alphabet of a strict variant.
	ErrAlphabetViolation = NewDomainError("CC-ALPH-4220", "character outside alphabet")
)

// ============================================================================
// Search Errors (SRCH)
// ============================================================================

var (
	// ErrSearchBudgetExhausted indicates the candidate budget ran out before
	// the key space was exhausted. It is not a NotFound outcome.
	ErrSearchBudgetExhausted = NewDomainError("CC-SRCH-4290", "search budget exhausted")

	// ErrSearchCanceled indicates the search context was canceled.
	ErrSearchCanceled = NewDomainError("CC-SRCH-4990", "search canceled")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewDomainError("CC-SYS-5000", "internal error")
)
