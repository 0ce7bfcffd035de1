package base

import "errors"

// StatusCode is the code returned to the OS.
type StatusCode uint8

// Status codes returned by the main executable.
const (
	SNoError StatusCode = iota
	SGenericError
	SHelpRequested
	SInvalidParameters
	SInitializationError
	SApplicationError
)

// StatusError is an error that determines the exit status.
type StatusError struct {
	Code StatusCode
	Err  error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// WithStatus wraps err so that the process exits with code.  It returns nil
// if err is nil.
func WithStatus(code StatusCode, err error) error {
	if err == nil {
		return nil
	}
	return &StatusError{Code: code, Err: err}
}

// Status returns the exit status for the error returned by a command: the
// code of the first StatusError in the chain, SNoError for nil, and
// SApplicationError otherwise.
func Status(err error) StatusCode {
	if err == nil {
		return SNoError
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return SApplicationError
}
