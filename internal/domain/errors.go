package domain

import "fmt"

// Error taxonomy. Every failure a service returns is one of these; the http
// layer maps the type to a status code and an envelope category. StoreError
// carries the underlying driver error for server-side logging only.

type ValidationError struct{ Msg string }

func (e ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type NotFoundError struct{ Msg string }

func (e NotFoundError) Error() string { return e.Msg }

func NotFoundf(format string, args ...any) error {
	return NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

type ConflictError struct{ Msg string }

func (e ConflictError) Error() string { return e.Msg }

func Conflictf(format string, args ...any) error {
	return ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// StoreError wraps a data-access failure. Msg is the generic client-safe
// message; Err is the driver detail that must never leave the process.
type StoreError struct {
	Msg string
	Err error
}

func (e StoreError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e StoreError) Unwrap() error { return e.Err }

func Storef(err error, format string, args ...any) error {
	return StoreError{Msg: fmt.Sprintf(format, args...), Err: err}
}
