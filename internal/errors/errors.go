package errors

import (
	"fmt"
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

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeEmptySelection  = "EMPTY_SELECTION"
	CodeUnknownColumn   = "UNKNOWN_COLUMN"
	CodeLoadFailure     = "LOAD_FAILURE"
	CodeExportFailure   = "EXPORT_FAILURE"
	CodeDatasetNotFound = "DATASET_NOT_FOUND"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func EmptySelection() *AppError {
	return New(CodeEmptySelection, "Please select at least one sample column")
}

func UnknownColumn(cause error) *AppError {
	return &AppError{
		Code:    CodeUnknownColumn,
		Message: "A selected column is not present in the uploaded table",
		Cause:   cause,
	}
}

func LoadFailure(cause error) *AppError {
	return &AppError{
		Code:    CodeLoadFailure,
		Message: "The uploaded file could not be parsed as tabular data",
		Cause:   cause,
	}
}

func ExportFailure(format string, cause error) *AppError {
	return &AppError{
		Code:    CodeExportFailure,
		Message: fmt.Sprintf("Export to %s failed", format),
		Cause:   cause,
	}
}

func DatasetNotFound(id string) *AppError {
	return New(CodeDatasetNotFound, fmt.Sprintf("dataset %s not found or expired", id))
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
