// Package common defines shared constants, sentinel errors and typed error
// wrappers used across StudyHub layers. Callers should use errors.Is to match
// the sentinels and errors.As to reach the typed details.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation reports an empty or unacceptable input field.
	ErrValidation = errors.New("validation error")

	// ErrNotFound reports a stale or unknown entity id.
	ErrNotFound = errors.New("not found")

	// ErrStorage reports that the persistence layer is unavailable or full.
	ErrStorage = errors.New("storage error")

	// ErrMissingCredential reports that a provider API key is not configured.
	ErrMissingCredential = errors.New("missing credential")

	// ErrRemote reports a failed call to an external API.
	ErrRemote = errors.New("remote error")

	// ErrParse reports that the AI answered but not in the expected shape.
	ErrParse = errors.New("parse error")
)

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError carries the id that could not be resolved.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// StorageError wraps a persistence failure for a store key.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// MissingCredentialError names the provider whose key is not configured.
type MissingCredentialError struct {
	Provider string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("no %s API key configured", e.Provider)
}

func (e *MissingCredentialError) Unwrap() error { return ErrMissingCredential }

// RemoteError wraps a transport failure or a non-2xx response. StatusCode is
// zero for transport failures.
type RemoteError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *RemoteError) Unwrap() []error { return []error{ErrRemote, e.Err} }

// ParseError reports AI output that yielded no usable question/answer pairs.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "could not parse AI response: " + e.Reason
}

func (e *ParseError) Unwrap() error { return ErrParse }
