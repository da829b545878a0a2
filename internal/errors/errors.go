// Package errors provides structured error types for vergo.
// It implements error classification, wrapping, and kind inspection.
package errors

import (
	"errors"
	"fmt"
)

// Kind represents the category of an error.
type Kind uint8

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a configuration error.
	KindConfig
	// KindGit indicates a git operation error.
	KindGit
	// KindVersion indicates a versioning error.
	KindVersion
	// KindParse indicates a commit message parsing error.
	KindParse
	// KindValidation indicates a validation error.
	KindValidation
	// KindNotFound indicates a resource was not found.
	KindNotFound
	// KindIO indicates a file I/O error.
	KindIO
	// KindInternal indicates an internal error.
	KindInternal
)

// String returns a human-readable string for the error kind.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindGit:
		return "git"
	case KindVersion:
		return "version"
	case KindParse:
		return "parse"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindIO:
		return "io"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the standard error type for vergo.
type Error struct {
	// Kind is the category of the error.
	Kind Kind
	// Op is the operation being performed when the error occurred.
	Op string
	// Message is a human-readable error message.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches this error.
// For *Error types, it checks if both the Kind and Op match.
// For sentinel errors (errors without Op), only Kind is compared.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op == "" {
		return e.Kind == t.Kind
	}
	return e.Kind == t.Kind && e.Op == t.Op
}

// New creates a new Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Newf creates a new Error with the given kind and formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind Kind, op string, message string) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, kind Kind, op string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// GetKind returns the Kind of an error.
// If the error is not an *Error, it returns KindUnknown.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind checks if an error is of a specific kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// Common error constructors for frequently used error types.

// Config creates a configuration error.
func Config(op, message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Op:      op,
		Message: message,
	}
}

// ConfigWrap wraps an error as a configuration error.
func ConfigWrap(err error, op, message string) *Error {
	return Wrap(err, KindConfig, op, message)
}

// Git creates a git error.
func Git(op, message string) *Error {
	return &Error{
		Kind:    KindGit,
		Op:      op,
		Message: message,
	}
}

// GitWrap wraps an error as a git error.
func GitWrap(err error, op, message string) *Error {
	return Wrap(err, KindGit, op, message)
}

// Version creates a versioning error.
func Version(op, message string) *Error {
	return &Error{
		Kind:    KindVersion,
		Op:      op,
		Message: message,
	}
}

// VersionWrap wraps an error as a versioning error.
func VersionWrap(err error, op, message string) *Error {
	return Wrap(err, KindVersion, op, message)
}

// Parse creates a commit parsing error.
func Parse(op, message string) *Error {
	return &Error{
		Kind:    KindParse,
		Op:      op,
		Message: message,
	}
}

// ParseWrap wraps an error as a commit parsing error.
func ParseWrap(err error, op, message string) *Error {
	return Wrap(err, KindParse, op, message)
}

// Validation creates a validation error.
func Validation(op, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Op:      op,
		Message: message,
	}
}

// NotFound creates a not-found error.
func NotFound(op, message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Op:      op,
		Message: message,
	}
}

// IO creates an I/O error.
func IO(op, message string) *Error {
	return &Error{
		Kind:    KindIO,
		Op:      op,
		Message: message,
	}
}

// IOWrap wraps an error as an I/O error.
func IOWrap(err error, op, message string) *Error {
	return Wrap(err, KindIO, op, message)
}

// Internal creates an internal error.
func Internal(op, message string) *Error {
	return &Error{
		Kind:    KindInternal,
		Op:      op,
		Message: message,
	}
}

// InternalWrap wraps an error as an internal error.
func InternalWrap(err error, op, message string) *Error {
	return Wrap(err, KindInternal, op, message)
}
