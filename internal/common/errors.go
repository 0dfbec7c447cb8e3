package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrEndOfDocument signals normal traversal completion; it is a control
	// sentinel, not a failure.
	ErrEndOfDocument = errors.New("end of document")

	// ErrStructural marks failures that abort a whole run: the document cannot
	// be opened, the page count cannot be resolved, or a grammar match surface
	// violates its contract.
	ErrStructural = errors.New("structural failure")

	// ErrWriter marks persistence failures. Silent record loss is worse than a
	// hard stop, so these abort the run.
	ErrWriter = errors.New("writer failure")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewStructural wraps cause as a fatal structural failure.
func NewStructural(code, message string, cause error) *AppError {
	if cause == nil {
		cause = ErrStructural
	} else {
		cause = fmt.Errorf("%w: %w", ErrStructural, cause)
	}
	return &AppError{Code: code, Message: message, Cause: cause}
}

// NewWriterError wraps cause as a fatal writer failure.
func NewWriterError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrWriter
	} else {
		cause = fmt.Errorf("%w: %w", ErrWriter, cause)
	}
	return &AppError{Code: "WRITE_FAILED", Message: message, Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
