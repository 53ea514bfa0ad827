package dataset

import "fmt"

// ErrorKind classifies dataset failures.
type ErrorKind string

const (
	// KindDataUnavailable means the source could not be read or its header is
	// unusable. It is fatal for the session.
	KindDataUnavailable ErrorKind = "DATA_UNAVAILABLE"
)

// Error is returned by every load failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// ErrDataUnavailable matches any load failure with errors.Is.
var ErrDataUnavailable = &Error{Kind: KindDataUnavailable}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func unavailable(message string, err error) *Error {
	return &Error{
		Kind:    KindDataUnavailable,
		Message: message,
		Err:     err,
	}
}
