// Package errors provides error handling for the haystack def engine.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := source.LoadFile(path); err != nil {
//	    return errors.Wrapf(err, "failed to load defs from %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "did you mean ahu?")
//
//	// Check errors
//	if errors.Is(err, errors.ErrMissingMandatoryTag) {
//	    // handle missing tag
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
	CombineErrors      = crdb.CombineErrors
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapOnce    = crdb.UnwrapOnce
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the def engine.
// Use these with errors.Is(); the structured error types in package namespace
// unwrap to them.
var (
	// ErrNotFound indicates a def name could not be resolved
	ErrNotFound = New("not found")

	// ErrInvalidArgument indicates a value of the wrong shape was passed,
	// typically a non-record where a record was required
	ErrInvalidArgument = New("invalid argument")

	// ErrMissingMandatoryTag indicates a record lacks a tag required by a def
	ErrMissingMandatoryTag = New("missing mandatory tag")

	// ErrMissingCompulsoryTag indicates a record lacks a namespace-wide required tag
	ErrMissingCompulsoryTag = New("missing compulsory tag")

	// ErrKindMismatch indicates a tag value has a different kind than its def declares
	ErrKindMismatch = New("kind mismatch")

	// ErrConflict indicates incompatible content, e.g. a lib version outside a constraint
	ErrConflict = New("conflict")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidArgumentError checks if an error is or wraps ErrInvalidArgument
func IsInvalidArgumentError(err error) bool {
	return err != nil && Is(err, ErrInvalidArgument)
}

// IsValidationError reports whether err is one of the record validation failures
func IsValidationError(err error) bool {
	return err != nil && IsAny(err, ErrMissingMandatoryTag, ErrMissingCompulsoryTag, ErrKindMismatch)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewInvalidArgumentError creates an invalid-argument error with a formatted message
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidArgument, Newf(format, args...).Error())
}
