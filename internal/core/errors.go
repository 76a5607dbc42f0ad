package core

import "fmt"

// ValidationError reports a caller-correctable problem: bad input shape,
// a length or uniqueness violation, an unresolved reference on create, or
// an illegal state transition. The message is surfaced verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that the entity a call addresses does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}
