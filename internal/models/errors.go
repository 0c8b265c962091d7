package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrUnsupportedRelease ErrorType = iota
	ErrUnknownRelease
	ErrInvalidRelease
	ErrInvalidRegion
	ErrUnknownOption
	ErrUsage
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrUnsupportedRelease:
		return "UnsupportedRelease"
	case ErrUnknownRelease:
		return "UnknownRelease"
	case ErrInvalidRelease:
		return "InvalidRelease"
	case ErrInvalidRegion:
		return "InvalidRegion"
	case ErrUnknownOption:
		return "UnknownOption"
	case ErrUsage:
		return "Usage"
	default:
		return "Unknown"
	}
}

// SourcesError represents an error while generating a sources list
type SourcesError struct {
	Type ErrorType
	Err  error
}

// NewError builds a SourcesError with a formatted message
func NewError(t ErrorType, format string, args ...interface{}) *SourcesError {
	return &SourcesError{Type: t, Err: fmt.Errorf(format, args...)}
}

// Error implements the error interface
func (e *SourcesError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *SourcesError) Unwrap() error {
	return e.Err
}

// ExitCode is the process status for any generation failure.
func (e *SourcesError) ExitCode() int {
	return 1
}

// IsErrorType reports whether err carries a SourcesError of type t
func IsErrorType(err error, t ErrorType) bool {
	var se *SourcesError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}
