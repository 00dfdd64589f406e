// Package kmterr defines the error kinds surfaced by every other
// package in this module. Call sites wrap one of these sentinels with
// fmt.Errorf("...: %w", ...) so callers can still errors.Is against the
// kind without caring about the wrapping message.
package kmterr

import "errors"

var (
	// ErrInvalidArgument covers bad names, duplicate columns, arity
	// mismatches, and an empty source passed to a view constructor.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch covers a cell tag that disagrees with its column's
	// declared type, or a filter program whose return type isn't Bool.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotFound covers an absent column, function overload, or row.
	ErrNotFound = errors.New("not found")

	// ErrParseError covers lexer/grammar failures in the expression
	// language.
	ErrParseError = errors.New("parse error")

	// ErrReferenceError covers an unresolved column reference or a
	// function call with no matching overload.
	ErrReferenceError = errors.New("reference error")

	// ErrIOFailure covers snapshot read/write failures.
	ErrIOFailure = errors.New("io failure")

	// ErrUnknown wraps a foreign failure that doesn't fit any other
	// kind.
	ErrUnknown = errors.New("unknown error")
)
