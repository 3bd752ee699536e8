package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrCapacityExceeded will throw if a survey already reached its response ceiling
	ErrCapacityExceeded = errors.New("survey has reached its maximum number of responses")
)

// NotFoundError reports which entity kind and id failed to resolve.
// It unwraps to ErrNotFound so callers can keep matching with errors.Is.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError builds the uniform not-found signal for an entity kind + id.
func NewNotFoundError(kind string, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}
