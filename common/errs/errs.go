// Package errs defines the fatal error taxonomy of spec.md §7: bitstream
// truncation, tree/text mismatch during write, and contract violations.
// Unknown NAL unit types and unparsed sub-structures are NOT errors here —
// they are recovered locally by the traversal as opaque payloads.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	CodeUnknown = iota
	// CodeTruncation: bitstream ended mid-field during decode.
	CodeTruncation
	// CodeTreeMismatch: expected Field/Node/Payload of a given name during
	// encode, but found something else (or nothing).
	CodeTreeMismatch
	// CodeContractViolation: bit count > 64, unknown mode flag, malformed
	// numeric literal, unexpected hex token.
	CodeContractViolation
)

const Success = "success"

// Error is a typed fatal error carrying a numeric code, in the teacher's
// own pattern.
type Error struct {
	Code int32
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// New builds an Error with the given code and message.
func New(code int32, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// Newf builds an Error with the given code and a formatted message.
func Newf(code int32, format string, args ...interface{}) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Truncation reports a bitstream that ended while reading the named field.
func Truncation(field string) error {
	return Newf(CodeTruncation, "bitstream ended unexpectedly while parsing %q", field)
}

// TreeMismatch reports a text/tree element that did not match what the
// traversal expected to find during encode.
func TreeMismatch(name string, got string) error {
	if got == "" {
		return Newf(CodeTreeMismatch, "expected %q but found nothing", name)
	}
	return Newf(CodeTreeMismatch, "expected %q but found %q", name, got)
}

// ContractViolation reports a violated precondition (oversized bit width,
// unknown mode flag, malformed literal, ...).
func ContractViolation(format string, args ...interface{}) error {
	return Newf(CodeContractViolation, format, args...)
}

// Code extracts the numeric code from err, or CodeUnknown if err is not an
// *Error (or is nil).
func Code(e error) int32 {
	if e == nil {
		return 0
	}
	err, ok := e.(*Error)
	if !ok {
		return CodeUnknown
	}
	if err == (*Error)(nil) {
		return 0
	}
	return err.Code
}

// Msg returns the message carried by err, or a generic description if err
// is not an *Error.
func Msg(e error) string {
	if e == nil {
		return Success
	}
	err, ok := e.(*Error)
	if !ok {
		return "unknown error: " + e.Error()
	}
	if err == (*Error)(nil) {
		return Success
	}
	return err.Msg
}

// Wrapf wraps err with a formatted message and a stack trace, via
// github.com/pkg/errors, for fatal conditions crossing a package boundary.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
