package errors

import (
	"fmt"
	"strings"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// IsCode reports whether err is an AppError carrying the given code
func IsCode(err error, code string) bool {
	return GetCode(err) == code
}

// Predefined error codes
const (
	CodeMissingFile    = "MISSING_FILE"
	CodeSchemaMismatch = "SCHEMA_MISMATCH"
	CodeRenderFailed   = "RENDER_FAILED"
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeInternalError  = "INTERNAL_ERROR"
)

// MissingFile builds the diagnostic for a dataset file that does not exist.
// formatDoc is the dataset's documented format (columns, purpose, example CSV)
// so the user can author the file without consulting anything else.
func MissingFile(path, formatDoc string) *AppError {
	return New(CodeMissingFile, fmt.Sprintf("data file not found: %s\n%s", path, formatDoc))
}

// SchemaMismatch builds the diagnostic for a dataset file that exists but is
// missing required columns or has no data rows. missing lists exactly the
// absent columns; it is empty when the file parsed to zero rows.
func SchemaMismatch(path string, missing []string, formatDoc string) *AppError {
	var msg string
	if len(missing) > 0 {
		msg = fmt.Sprintf("data file %s is missing required columns: %s\n%s",
			path, strings.Join(missing, ", "), formatDoc)
	} else {
		msg = fmt.Sprintf("data file %s contains no data rows\n%s", path, formatDoc)
	}
	return New(CodeSchemaMismatch, msg)
}

// RenderFailed wraps a failure from the plotting layer for one chart
func RenderFailed(chart string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    CodeRenderFailed,
		Message: fmt.Sprintf("failed to render %s", chart),
		Cause:   err,
	}
}

// ConfigInvalid reports an invalid configuration value
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}
