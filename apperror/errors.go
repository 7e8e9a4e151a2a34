package apperror

import (
	"errors"
	"fmt"
)

// The four error kinds every service method can surface. Handlers map them to
// HTTP statuses; the consumer and the purge scheduler log and move on.
//
// NotFoundError      -> 404 (or 400 when an unresolved brand/country name
//                       fails a car create/update)
// InvalidIDError     -> 400
// ValidationError    -> 400
// NotUniqueKeyError  -> 400

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

type InvalidIDError struct {
	Message string
}

func (e *InvalidIDError) Error() string {
	return e.Message
}

func NewInvalidID(format string, args ...interface{}) *InvalidIDError {
	return &InvalidIDError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError carries every field violation, not just the first one.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entity validation failed: %v", e.Errors)
}

// NotUniqueKeyError carries a message per colliding natural key.
type NotUniqueKeyError struct {
	Errors []string
}

func (e *NotUniqueKeyError) Error() string {
	return fmt.Sprintf("not unique key: %v", e.Errors)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsInvalidID(err error) bool {
	var target *InvalidIDError
	return errors.As(err, &target)
}

// Payload returns the error body shape shared by every 4xx response:
// {"errors": ["<message>", ...]}.
func Payload(err error) map[string][]string {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return map[string][]string{"errors": validation.Errors}
	}
	var notUnique *NotUniqueKeyError
	if errors.As(err, &notUnique) {
		return map[string][]string{"errors": notUnique.Errors}
	}
	return map[string][]string{"errors": {err.Error()}}
}
