package models

import (
	"errors"
	"fmt"
)

// Error kinds shared by the registry, the tool handlers, and the prompt and
// resource layers. Callers match with errors.Is; the message returned by
// Error() is the caller-facing text.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrParseFailure     = errors.New("parse failure")
)

// opError tags a caller-facing message with one of the error kinds above.
type opError struct {
	kind error
	msg  string
}

func (e *opError) Error() string { return e.msg }

func (e *opError) Unwrap() error { return e.kind }

// InvalidArgumentf formats an ErrInvalidArgument-tagged error.
func InvalidArgumentf(format string, v ...any) error {
	return &opError{kind: ErrInvalidArgument, msg: fmt.Sprintf(format, v...)}
}

// NotFoundf formats an ErrNotFound-tagged error.
func NotFoundf(format string, v ...any) error {
	return &opError{kind: ErrNotFound, msg: fmt.Sprintf(format, v...)}
}

// PermissionDeniedf formats an ErrPermissionDenied-tagged error.
func PermissionDeniedf(format string, v ...any) error {
	return &opError{kind: ErrPermissionDenied, msg: fmt.Sprintf(format, v...)}
}

// ParseFailuref formats an ErrParseFailure-tagged error.
func ParseFailuref(format string, v ...any) error {
	return &opError{kind: ErrParseFailure, msg: fmt.Sprintf(format, v...)}
}
