// Package errors defines the error kinds rover reports to the user. Every
// kind is recoverable: the session turns it into a status message.
package errors

import (
	"errors"
	"fmt"
)

// Re-exported so callers don't need both packages.
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Kind classifies an Error.
type Kind int

const (
	Unknown Kind = iota
	AlreadyExists
	InvalidName
	Cancelled
	NotFound
)

func (k Kind) String() string {
	switch k {
	case AlreadyExists:
		return "already exists"
	case InvalidName:
		return "invalid name"
	case Cancelled:
		return "cancelled"
	case NotFound:
		return "not found"
	default:
		return "error"
	}
}

// Error is the error type returned by the file, clipboard and history
// packages. Subject is the entry name or path the error is about.
type Error struct {
	kind    Kind
	subject string
	err     error
}

func (e *Error) Error() string {
	msg := e.kind.String()
	if e.subject != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.subject)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *Error) Kind() Kind {
	return e.kind
}

// Subject returns the name or path the error refers to
func (e *Error) Subject() string {
	return e.subject
}

// NewAlreadyExists reports a name collision in a directory.
func NewAlreadyExists(name string) *Error {
	return &Error{kind: AlreadyExists, subject: name}
}

// NewInvalidName reports a reserved name or an entry of the wrong kind.
func NewInvalidName(name string) *Error {
	return &Error{kind: InvalidName, subject: name}
}

// NewCancelled reports a declined confirmation.
func NewCancelled() *Error {
	return &Error{kind: Cancelled}
}

// NewNotFound reports a path that no longer exists.
func NewNotFound(path string) *Error {
	return &Error{kind: NotFound, subject: path}
}

// Wrap attaches a subject to a filesystem error. Returns nil for a nil err.
func Wrap(err error, subject string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: Unknown, subject: subject, err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Unknown
}

func IsAlreadyExists(err error) bool { return KindOf(err) == AlreadyExists }
func IsInvalidName(err error) bool   { return KindOf(err) == InvalidName }
func IsCancelled(err error) bool     { return KindOf(err) == Cancelled }
func IsNotFound(err error) bool      { return KindOf(err) == NotFound }
