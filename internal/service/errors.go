package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is matched by every *InvalidReferenceError
	ErrInvalidReference = errors.New("invalid reference")
)

// NotFoundError reports a lookup for an entity that does not exist
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// InvalidReferenceError reports a payload field pointing at an entity that
// does not exist. It is a client error, not a failed lookup.
type InvalidReferenceError struct {
	Field    string
	Resource string
	ID       int64
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Resource, e.ID)
}

func (e *InvalidReferenceError) Unwrap() error {
	return ErrInvalidReference
}
