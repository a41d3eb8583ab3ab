// Package errors provides the error taxonomy for dataset ingestion.
//
// Two structured error types cover everything the loaders can report:
// IOError for unreadable files and FormatError for structurally broken
// content. Both carry enough context (path, line, column) to point at the
// offending input, marshal themselves into zerolog events, and are created
// with cockroachdb/errors stack traces attached.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// IOError indicates that a source or auxiliary file could not be opened or
// read. The ingestion is aborted; no partial dataset is produced.
type IOError struct {
	Op   string // operation that failed, e.g. "open", "read"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("boostio: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("boostio: %s %s", e.Op, e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured fields to a zerolog event.
func (e *IOError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("op", e.Op).
		Str("path", e.Path).
		AnErr("cause", e.Err).
		Str("type", "IOError")
}

// NewIOError creates an IOError with a stack trace attached.
func NewIOError(op, path string, err error) error {
	ioErr := &IOError{Op: op, Path: path, Err: err}
	return errors.WithStack(ioErr)
}

// FormatError indicates structurally invalid content in a source or
// auxiliary file: a field-count mismatch between rows, an auxiliary vector
// whose length does not match its source's row count, or an unparseable
// numeric field. Line is 1-based; Column is 1-based and zero when the
// problem is not tied to a single field.
type FormatError struct {
	Path   string
	Line   int
	Column int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("boostio: %s:%d: column %d: %s", e.Path, e.Line, e.Column, e.Reason)
	}
	if e.Line > 0 {
		return fmt.Sprintf("boostio: %s:%d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("boostio: %s: %s", e.Path, e.Reason)
}

// MarshalZerologObject adds the structured fields to a zerolog event.
func (e *FormatError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Int("line", e.Line).
		Int("column", e.Column).
		Str("reason", e.Reason).
		Str("type", "FormatError")
}

// NewFormatError creates a FormatError with a stack trace attached.
func NewFormatError(path string, line, column int, reason string) error {
	fmtErr := &FormatError{Path: path, Line: line, Column: column, Reason: reason}
	return errors.WithStack(fmtErr)
}

// NewFormatErrorf is NewFormatError with a formatted reason.
func NewFormatErrorf(path string, line, column int, format string, args ...interface{}) error {
	return NewFormatError(path, line, column, fmt.Sprintf(format, args...))
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// GetSafeDetails exposes cockroachdb's safe details, used by pkg/log to
// attach stack traces to error-level events.
func GetSafeDetails(err error) []string {
	return errors.GetSafeDetails(err).SafeDetails
}

var (
	// ErrEmptySource is returned when a source file contains no data rows.
	ErrEmptySource = New("source contains no data rows")

	// ErrNoSources is returned when a path list resolves to zero sources.
	ErrNoSources = New("no source files given")
)
