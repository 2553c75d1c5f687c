package domain

import "fmt"

// ErrorKind classifies a domain error into one of the API's error categories.
// The transport layer maps each kind to a single HTTP status code.
type ErrorKind int

const (
	KindInvalid      ErrorKind = iota // malformed input, bad role, weak password
	KindUnauthorized                  // missing/invalid token, wrong role, bad credentials
	KindNotFound                      // referenced entity absent
	KindConflict                      // duplicate action (e.g. double apply)
	KindInternal                      // unexpected faults, store connectivity
)

// Error is the single error type crossing the service boundary. Wrapped causes
// are kept for logging but never rendered to clients.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) *Error {
	return &Error{Kind: KindInvalid, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}
