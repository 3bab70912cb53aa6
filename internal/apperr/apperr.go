// Package apperr defines the error taxonomy surfaced to callers.
// Every failure a caller can recover from is one of four kinds; handlers map
// kinds to HTTP status codes and nothing here terminates the process.
package apperr

import "errors"

type Kind int

const (
	// KindNotFound: the entity id does not resolve
	KindNotFound Kind = iota + 1
	// KindForbidden: the authorization policy denied the action
	KindForbidden
	// KindValidation: malformed or rule-violating input
	KindValidation
	// KindInvalidState: transition attempted from a non-pending status
	KindInvalidState
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

// KindOf returns the kind of err, or 0 if err is not an apperr.Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsForbidden(err error) bool    { return KindOf(err) == KindForbidden }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
