package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the entity services. Handlers map these to HTTP
// statuses; services never swallow or retry them.
var (
	ErrEmailTaken    = errors.New("user with this email already registered")
	ErrEmailNotFound = errors.New("no user registered with this email")
	ErrBadPassword   = errors.New("invalid password")
)

// ValidationError reports a missing or empty required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}
