package errors

import (
	stderrors "errors"
	"fmt"

	"gocontrast/domain/core"
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

// Wrap wraps an error with additional context, keeping the code of a wrapped
// AppError or classifying a domain error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    GetCode(FromDomain(err)),
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

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// IsAppError checks if an error is or wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid       = "CONFIG_INVALID"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeDesignSource        = "DESIGN_SOURCE_ERROR"
	CodeUnknownParadigm     = "UNKNOWN_PARADIGM"
	CodeMissingRegressor    = "MISSING_REGRESSOR"
	CodeInternalConsistency = "INTERNAL_CONSISTENCY"
	CodeBatchFailed         = "BATCH_FAILED"
)

// FromDomain classifies an engine error. AppErrors pass through unchanged.
func FromDomain(err error) error {
	if err == nil {
		return nil
	}
	if IsAppError(err) {
		return err
	}
	switch {
	case core.IsUnknownParadigm(err):
		return &AppError{Code: CodeUnknownParadigm, Message: "unknown paradigm", Cause: err}
	case core.IsMissingRegressor(err):
		return &AppError{Code: CodeMissingRegressor, Message: "design matrix lacks a regressor", Cause: err}
	case core.IsDefect(err):
		return &AppError{Code: CodeInternalConsistency, Message: "contrast engine defect", Cause: err}
	default:
		appErr := InternalError("internal error")
		appErr.Cause = err
		return appErr
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func DesignSourceError(source string, cause error) *AppError {
	return &AppError{
		Code:    CodeDesignSource,
		Message: fmt.Sprintf("reading design columns from %s", source),
		Cause:   cause,
	}
}
