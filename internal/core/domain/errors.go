package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyInProgress rejects a mutation while another one for the same
	// entity is still outstanding.
	ErrAlreadyInProgress = errors.New("another operation is already in progress for this entity")
)

// ValidationError is a field-scoped rejection of user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// InvalidTransitionError is returned when a transition is not allowed from
// the current status.
type InvalidTransitionError struct {
	Entity string
	From   string
	Verb   Verb
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s %s in status %s", e.Verb, e.Entity, e.From)
}

// NetworkError means no response was received. The request may be retried.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RejectedError is a 4xx answer from the system of record. Retrying without
// changing the input will fail again.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

// ServerFaultError is a 5xx answer from the system of record.
type ServerFaultError struct {
	Status  int
	Message string
}

func (e *ServerFaultError) Error() string { return e.Message }

// Retryable reports whether err may succeed when the same request is sent
// again.
func Retryable(err error) bool {
	var netErr *NetworkError
	var faultErr *ServerFaultError
	return errors.As(err, &netErr) || errors.As(err, &faultErr)
}

// UserMessage returns the text shown to the user for err. Remote messages
// are passed through verbatim; anything else falls back to fallback.
func UserMessage(err error, fallback string) string {
	var (
		rejected   *RejectedError
		fault      *ServerFaultError
		validation *ValidationError
		transition *InvalidTransitionError
	)
	switch {
	case errors.As(err, &rejected) && rejected.Message != "":
		return rejected.Message
	case errors.As(err, &fault) && fault.Message != "":
		return fault.Message
	case errors.As(err, &validation), errors.As(err, &transition):
		return err.Error()
	case errors.Is(err, ErrAlreadyInProgress):
		return err.Error()
	}
	return fallback
}
