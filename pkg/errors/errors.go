// Package errors holds the error taxonomy shared by the service and the HTTP
// boundary. Every failure that reaches a client carries one Kind, and the
// boundary turns the Kind into a status code with Classify.
package errors

import (
	"errors"
	"fmt"
)

// Kind tags an error with its category.
type Kind uint8

const (
	KindUnclassified Kind = iota
	KindNotFound
	KindAlreadyComplete
	KindValidation
	KindNullArgument
	KindMalformedRequest
	KindPersistence
)

var kindNames = [...]string{
	KindUnclassified:     "Unclassified",
	KindNotFound:         "NotFound",
	KindAlreadyComplete:  "AlreadyComplete",
	KindValidation:       "Validation",
	KindNullArgument:     "NullArgument",
	KindMalformedRequest: "MalformedRequest",
	KindPersistence:      "Persistence",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnclassified]
}

// Error is a categorised error. Err, when set, is the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	default:
		return e.Message + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an Error of the given kind without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind. The error text is err's own.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Wrapf tags err with kind and prefixes it with a message.
func Wrapf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of the outermost *Error in err's chain.
// Errors that carry no kind are KindUnclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnclassified
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the client-facing text of err. Persistence errors expose
// only their own message so driver details stay in the logs.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Kind == KindPersistence && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
