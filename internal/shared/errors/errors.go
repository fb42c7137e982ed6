package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for the export pipeline
type ErrorType string

const (
	ErrorTypeMissingConfigFile       ErrorType = "MISSING_CONFIG_FILE"
	ErrorTypeMissingRequiredSetting  ErrorType = "MISSING_REQUIRED_SETTING"
	ErrorTypeToolNotFound            ErrorType = "TOOL_NOT_FOUND"
	ErrorTypeToolExecutionFailure    ErrorType = "TOOL_EXECUTION_FAILURE"
	ErrorTypeMalformedOutputLine     ErrorType = "MALFORMED_OUTPUT_LINE"
	ErrorTypeMissingSourceDocument   ErrorType = "MISSING_SOURCE_DOCUMENT"
	ErrorTypeMissingFallbackArtifact ErrorType = "MISSING_FALLBACK_ARTIFACT"
	ErrorTypeArtifactExists          ErrorType = "ARTIFACT_EXISTS"
	ErrorTypeStorage                 ErrorType = "STORAGE_ERROR"
	ErrorTypeDatabase                ErrorType = "DATABASE_ERROR"
)

// Common sentinel errors
var (
	ErrToolTimeout = errors.New("tool execution timed out")
	ErrNotAnObject = errors.New("line is not a single JSON object")
)

// AppError represents a custom application error with context
type AppError struct {
	Type      ErrorType              `json:"type"`
	Message   string                 `json:"message"`
	Code      string                 `json:"code,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     error                  `json:"-"`
	Component string                 `json:"component,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new application error
func NewAppError(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithCause adds the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithComponent adds the component name
func (e *AppError) WithComponent(component string) *AppError {
	e.Component = component
	return e
}

// WithDetail adds a detail field
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Common error constructors

// NewMissingConfigFileError reports a configuration file that does not exist
func NewMissingConfigFileError(path string) *AppError {
	return NewAppError(ErrorTypeMissingConfigFile, fmt.Sprintf(".env file not found at %s", path)).
		WithDetail("path", path)
}

// NewMissingRequiredSettingError reports a required key absent after load
func NewMissingRequiredSettingError(key string) *AppError {
	return NewAppError(ErrorTypeMissingRequiredSetting, fmt.Sprintf("%s not found in .env", key)).
		WithDetail("key", key)
}

// NewToolNotFoundError reports a shell binary that cannot be located
func NewToolNotFoundError(binary string) *AppError {
	return NewAppError(ErrorTypeToolNotFound, fmt.Sprintf("'%s' not found. Please install MongoDB Shell.", binary)).
		WithDetail("binary", binary)
}

// NewToolExecutionError reports a failed or timed out shell invocation.
// The captured diagnostic output is appended to the message.
func NewToolExecutionError(collection string, stderr string) *AppError {
	msg := fmt.Sprintf("Failed to export %s", collection)
	if s := strings.TrimSpace(stderr); s != "" {
		msg = fmt.Sprintf("%s: %s", msg, s)
	}
	return NewAppError(ErrorTypeToolExecutionFailure, msg).
		WithDetail("collection", collection).
		WithDetail("stderr", stderr)
}

// NewMalformedOutputLineError reports a retained output line that is not valid JSON
func NewMalformedOutputLineError(collection string, lineNo int, line string) *AppError {
	return NewAppError(ErrorTypeMalformedOutputLine,
		fmt.Sprintf("Unexpected error exporting %s: malformed output line %d", collection, lineNo)).
		WithDetail("collection", collection).
		WithDetail("line_number", lineNo).
		WithDetail("line", line)
}

// NewMissingSourceDocumentError reports an absent request-collection document
func NewMissingSourceDocumentError(path string) *AppError {
	return NewAppError(ErrorTypeMissingSourceDocument, fmt.Sprintf("Postman collection file not found at %s", path)).
		WithDetail("path", path)
}

// NewMissingFallbackArtifactError reports an absent fallback source. It is never fatal.
func NewMissingFallbackArtifactError(name string) *AppError {
	return NewAppError(ErrorTypeMissingFallbackArtifact, fmt.Sprintf("%s not found; skipping.", name)).
		WithDetail("name", name)
}

// NewArtifactExistsError reports an output name that is already taken
func NewArtifactExistsError(path string) *AppError {
	return NewAppError(ErrorTypeArtifactExists, fmt.Sprintf("refusing to overwrite existing artifact %s", path)).
		WithDetail("path", path)
}

// NewStorageError creates a filesystem error
func NewStorageError(message string) *AppError {
	return NewAppError(ErrorTypeStorage, message)
}

// NewDatabaseError creates a database driver error
func NewDatabaseError(message string) *AppError {
	return NewAppError(ErrorTypeDatabase, message)
}

// Helper functions for common error scenarios

// WrapError wraps an error with context, keeping existing AppErrors as they are
func WrapError(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewStorageError(message).WithCause(err)
}

// TypeOf returns the ErrorType of err, or "" when err carries none
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType checks whether err is an AppError of the given type
func IsType(err error, errorType ErrorType) bool {
	return err != nil && TypeOf(err) == errorType
}

// IsFatal reports whether err must abort the run. Only a missing fallback
// artifact is tolerated.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !IsType(err, ErrorTypeMissingFallbackArtifact)
}

// IsToolNotFound checks if an error means the shell binary is missing
func IsToolNotFound(err error) bool {
	return IsType(err, ErrorTypeToolNotFound)
}
