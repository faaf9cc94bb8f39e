// Package mcerrors holds the error kinds returned by the generator along with
// an error type that carries a message meant for the person running the tool.
package mcerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is the kind of error returned when a configuration file
	// cannot be read or holds values that cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownFormat is the kind of error returned when an output format is
	// asked for that the generator does not know how to produce.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrInvalidGraph is the kind of error returned when a built grammar breaks
	// one of the context graph rules. It always points at a bug in the builder.
	ErrInvalidGraph = errors.New("invalid context graph")
)

// userError is an error that has both a human-readable message to show to
// the operator and a more technical "error message" style message. It is
// classified by a kind, one of the Err* variables, which errors.Is matches.
type userError struct {
	kind  error
	msg   string
	human string
	wrap  error
}

func (e *userError) Error() string {
	return e.msg
}

// UserMessage shows the message that should be displayed to the operator.
func (e *userError) UserMessage() string {
	return e.human
}

// Unwrap gives the error that the userError wraps, if it wraps one.
func (e *userError) Unwrap() error {
	return e.wrap
}

// Is returns whether target is the kind of the error.
func (e *userError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// User returns a new error of the given kind that has both the message to
// show the operator and the technical description of the error.
func User(kind error, human, technical string) error {
	return WrapUser(nil, kind, human, technical)
}

// Userf returns a new error of the given kind that has a message to show to
// the operator and an automatically generated Error() description.
func Userf(kind error, humanFormat string, a ...interface{}) error {
	return User(kind, fmt.Sprintf(humanFormat, a...), "")
}

// WrapUser returns a new error of the given kind that has both the message to
// show the operator and the technical description of the error, and that wraps
// the given error.
func WrapUser(e error, kind error, human, technical string) error {
	if technical == "" {
		technical = human
		if kind != nil {
			technical = fmt.Sprintf("%s: %s", kind.Error(), human)
		}
		if e != nil {
			technical = fmt.Sprintf("%s: %s", technical, e.Error())
		}
	}
	return &userError{
		kind:  kind,
		msg:   technical,
		human: human,
		wrap:  e,
	}
}

// WrapUserf returns a new error of the given kind that has both the message to
// show the operator and an automatically generated Error() description, and
// that wraps the given error.
func WrapUserf(e error, kind error, humanFormat string, a ...interface{}) error {
	return WrapUser(e, kind, fmt.Sprintf(humanFormat, a...), "")
}

// Message gets the message to display to the console for the given error. If
// err is or wraps one of the errors created by this package, its user message
// is returned. Otherwise, err.Error() is returned.
func Message(err error) string {
	var uErr *userError
	if errors.As(err, &uErr) {
		return uErr.UserMessage()
	}
	return err.Error()
}
