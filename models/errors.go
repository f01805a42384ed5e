package models

import "fmt"

// ErrorValidation is returned when required input is missing or malformed.
// Callers map it to a 400 response with field-level detail.
type ErrorValidation struct {
	Message string
	Fields  map[string]string
}

func (e ErrorValidation) Error() string { return e.Message }

func NewValidationError(message string, fields map[string]string) ErrorValidation {
	return ErrorValidation{Message: message, Fields: fields}
}

// ErrorNotFound is returned when a referenced record does not exist.
type ErrorNotFound struct {
	Resource string
	ID       uint
}

func (e ErrorNotFound) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ErrorUnauthorized is returned when the caller lacks the role an
// operation requires.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

// ErrorInternalServer wraps failures from the persistence layer. This
// component never retries them; they surface as a generic 500.
type ErrorInternalServer struct {
	Op  string
	Err error
}

func (e ErrorInternalServer) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e ErrorInternalServer) Unwrap() error { return e.Err }

func NewStorageError(op string, err error) ErrorInternalServer {
	return ErrorInternalServer{Op: op, Err: err}
}
