package common

import (
	"errors"
	"fmt"
)

// Error is a categorized fatal failure of a render run. Callers inspect the
// category with errors.Is against ErrValidation, ErrSchema, ErrResource and
// ErrIO.
type Error struct {
	Kind ErrorKind
	Err  error
}

var (
	ErrValidation = &Error{Kind: ErrorKindValidation}
	ErrSchema     = &Error{Kind: ErrorKindSchema}
	ErrResource   = &Error{Kind: ErrorKindResource}
	ErrIO         = &Error{Kind: ErrorKindIo}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Kind.String() + " error: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any error of the same kind when target is one of the sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// Validation reports malformed or out of range user input.
func Validation(format string, args ...any) error {
	return &Error{Kind: ErrorKindValidation, Err: fmt.Errorf(format, args...)}
}

// Resource reports font or background that cannot be located, opened or decoded.
func Resource(format string, args ...any) error {
	return &Error{Kind: ErrorKindResource, Err: fmt.Errorf(format, args...)}
}

// IO reports output that cannot be created or written.
func IO(format string, args ...any) error {
	return &Error{Kind: ErrorKindIo, Err: fmt.Errorf(format, args...)}
}
