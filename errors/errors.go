// Package errors provides standardized error handling for the generator
// pipeline. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across the stages.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransient represents temporary errors that may be retried
	// (network fetch failures, timeouts).
	ErrorTransient ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input or configuration.
	ErrorInvalid
	// ErrorFatal represents unrecoverable errors that abort the entire
	// generation run. Every referential-integrity failure is fatal: the
	// class graph's correctness is a precondition for every downstream
	// stage, so partial graphs are not tolerated.
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Referential integrity errors - always fatal
	ErrUnresolvedParent       = errors.New("unresolved parent class reference")
	ErrUnresolvedSupersession = errors.New("unresolved supersession target")
	ErrUnresolvedDomain       = errors.New("unresolved property domain reference")
	ErrUnresolvedRange        = errors.New("unresolved property range reference")
	ErrUnresolvedEnumOwner    = errors.New("unresolved enumeration owner reference")
	ErrInheritanceCycle       = errors.New("inheritance cycle detected")
	ErrDuplicateClass         = errors.New("duplicate class registration")

	// Input and parsing errors
	ErrInvalidData   = errors.New("invalid data format")
	ErrParsingFailed = errors.New("parsing failed")

	// Fetch errors
	ErrFetchFailed   = errors.New("ontology fetch failed")
	ErrFetchRejected = errors.New("ontology fetch rejected")
	ErrEmptyOntology = errors.New("ontology document contains no facts")

	// Configuration errors
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrMissingConfig  = errors.New("missing required configuration")
	ErrConfigNotFound = errors.New("configuration not found")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsTransient checks if an error is transient and may be retried
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorTransient
	}

	return errors.Is(err, ErrFetchFailed) ||
		errors.Is(err, context.DeadlineExceeded)
}

// IsFatal checks if an error is fatal and must abort the run
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrUnresolvedParent) ||
		errors.Is(err, ErrUnresolvedSupersession) ||
		errors.Is(err, ErrUnresolvedDomain) ||
		errors.Is(err, ErrUnresolvedRange) ||
		errors.Is(err, ErrUnresolvedEnumOwner) ||
		errors.Is(err, ErrInheritanceCycle) ||
		errors.Is(err, ErrDuplicateClass)
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrInvalidData) ||
		errors.Is(err, ErrParsingFailed) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorTransient // Default for nil
	}

	if IsFatal(err) {
		return ErrorFatal
	}
	if IsInvalid(err) {
		return ErrorInvalid
	}
	return ErrorTransient
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapTransient(), WrapFatal(), or WrapInvalid() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapTransient wraps an error as transient with context
func WrapTransient(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorTransient, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// Unresolved builds a fatal referential-integrity error for a reference that
// failed to resolve against the class registry.
func Unresolved(sentinel error, component, subject, reference string) error {
	wrapped := fmt.Errorf("%s: %w: %s -> %s", component, sentinel, subject, reference)
	return newClassified(ErrorFatal, wrapped, component, "resolve", wrapped.Error())
}
