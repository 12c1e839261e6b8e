package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Common error sentinel values
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrImmutableRecord    = errors.New("seeded record is immutable")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrTransactionFailed  = errors.New("transaction failed")
	ErrForeignKey         = errors.New("foreign key constraint violation")
	ErrInvalidField       = errors.New("invalid field")
)

// StoreErr carries the operation and entity a store failure happened on.
// Lookups that find nothing do NOT produce a StoreErr; absence is an
// expected outcome modeled as a nil record.
type StoreErr struct {
	Operation string
	Entity    string
	err       error
	Cause     error
}

// implements error interface. this allows us to pass an instance of StoreErr
// as an argument of type `error`
func (e *StoreErr) Error() string {
	msg := fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Entity, e.err)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *StoreErr) Unwrap() error {
	return e.err
}

// NewStoreErr classifies a raw database error into one of the sentinel
// values and wraps it with operation context.
func NewStoreErr(operation, entity string, cause error) *StoreErr {
	sentinel := ErrDatabaseQuery
	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "UNIQUE constraint"):
			sentinel = ErrAlreadyExists
		case strings.Contains(errStr, "FOREIGN KEY constraint"):
			sentinel = ErrForeignKey
		case strings.Contains(errStr, "unable to open"), strings.Contains(errStr, "database is locked"):
			sentinel = ErrDatabaseConnection
		}
	}

	return &StoreErr{
		Operation: operation,
		Entity:    entity,
		err:       sentinel,
		Cause:     cause,
	}
}

// NewValidationErr flags a single bad field at the form boundary.
func NewValidationErr(field, detail string) *StoreErr {
	return &StoreErr{
		Operation: "validate",
		Entity:    field,
		err:       fmt.Errorf("%w: %s", ErrInvalidField, detail),
	}
}
