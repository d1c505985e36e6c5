package apperr

import "errors"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ErrAdminCredentialMissing is returned by write operations when no privileged writer was configured.
var ErrAdminCredentialMissing = errors.New("privileged store credential is not configured")

// ReadError wraps a store failure on a read path. It never crosses the access layer's public boundary.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return "read " + e.Op + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func NewRead(op string, err error) *ReadError {
	return &ReadError{Op: op, Err: err}
}

// WriteError wraps a store failure on a write path and is always surfaced to the caller.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return "write " + e.Op + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func NewWrite(op string, err error) *WriteError {
	return &WriteError{Op: op, Err: err}
}
