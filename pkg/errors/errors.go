// Package errors provides a structured error type for the line-ordering
// engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the builder, solver, and decoder
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The five codes correspond to the five failure kinds the engine can
// raise: a malformed model, a backend failure, a proven-infeasible model,
// an unusable dump path, or a broken decoder invariant.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeModelConstruction, "segment %s: cardinality mismatch", seg)
//	if errors.Is(err, errors.ErrCodeSolverInfeasible) {
//	    // Handle non-optimal result
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "writing MPS to %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the five failure kinds named by the engine's failure
// semantics.
const (
	// ErrCodeModelConstruction marks an inconsistent graph fed to the ILP
	// builder (e.g. a segment whose position count disagrees with its
	// non-relative line count). Always fatal.
	ErrCodeModelConstruction Code = "MODEL_CONSTRUCTION"

	// ErrCodeSolver marks a hard failure reported by the solver backend
	// (as opposed to a proven-infeasible model). Fatal to the run.
	ErrCodeSolver Code = "SOLVER_ERROR"

	// ErrCodeSolverInfeasible marks a backend that proved the model
	// INFEASIBLE or UNBOUNDED, or returned without an integer solution at
	// its time limit. Non-fatal: the caller decides how to proceed.
	ErrCodeSolverInfeasible Code = "SOLVER_INFEASIBLE"

	// ErrCodeIO marks an unusable MPS, solution, or human-readable dump
	// path. Fatal only when the path was required (e.g. by external
	// pre-solve); non-fatal for optional debug dumps.
	ErrCodeIO Code = "IO_ERROR"

	// ErrCodeDecoderAssertion marks a uniqueness invariant broken in the
	// solver's returned solution — evidence of a solver or builder bug.
	// Always fatal.
	ErrCodeDecoderAssertion Code = "DECODER_ASSERTION"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
