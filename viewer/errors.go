package viewer

import (
	"errors"
	"fmt"
	"os"
)

// ErrorKind classifies every failure the engine can report.
type ErrorKind int

const (
	// KindInvalidPath indicates an empty or unusable file path argument.
	KindInvalidPath ErrorKind = iota + 1
	// KindFileNotFound indicates the file does not exist.
	KindFileNotFound
	// KindPermissionDenied indicates the file exists but cannot be read.
	KindPermissionDenied
	// KindUnsupportedFormat indicates the file is neither Parquet nor Arrow IPC.
	KindUnsupportedFormat
	// KindCorruptFile indicates a header, footer, or structure that violates
	// the format specification.
	KindCorruptFile
	// KindProjectionOutOfRange indicates an invalid column projection list.
	KindProjectionOutOfRange
	// KindSQLParse indicates SQL text that could not be tokenized.
	KindSQLParse
	// KindOperationFailed is the catch-all for I/O errors not otherwise
	// classified.
	KindOperationFailed
)

// String returns the stable name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidPath:
		return "invalid path"
	case KindFileNotFound:
		return "file not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindUnsupportedFormat:
		return "unsupported format"
	case KindCorruptFile:
		return "corrupt file"
	case KindProjectionOutOfRange:
		return "projection out of range"
	case KindSQLParse:
		return "sql parse error"
	case KindOperationFailed:
		return "operation failed"
	default:
		return "unknown error"
	}
}

// Error is the engine's error type. Every failure that crosses the package
// boundary is one of these, so callers can switch on Kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an engine error of the given kind.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an engine error of the given kind around an underlying
// cause.
func WrapError(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the ErrorKind from err, or 0 if err is not an engine error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// classifyOpenError maps an os.Open failure to the engine's error taxonomy.
func classifyOpenError(path string, err error) *Error {
	switch {
	case os.IsNotExist(err):
		return WrapError(KindFileNotFound, err, "%s", path)
	case os.IsPermission(err):
		return WrapError(KindPermissionDenied, err, "%s", path)
	default:
		return WrapError(KindOperationFailed, err, "failed to open %s", path)
	}
}
