package student

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references an id that is
	// not in the collection.
	ErrNotFound = errors.New("student not found")
	// ErrDuplicateID is returned when a create collides with an existing id.
	ErrDuplicateID = errors.New("duplicate student id")
	// ErrInvalidRecord is returned for records missing required fields.
	ErrInvalidRecord = errors.New("invalid student record")
)

// RecordError wraps a sentinel with the id that triggered it.
type RecordError struct {
	Kind error
	Msg  string
}

func (e *RecordError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *RecordError) Unwrap() error { return e.Kind }

func notFound(id string) error {
	return &RecordError{Kind: ErrNotFound, Msg: fmt.Sprintf("id %q", id)}
}

func duplicate(id string) error {
	return &RecordError{Kind: ErrDuplicateID, Msg: fmt.Sprintf("id %q", id)}
}

func invalidf(format string, args ...any) error {
	return &RecordError{Kind: ErrInvalidRecord, Msg: fmt.Sprintf(format, args...)}
}
