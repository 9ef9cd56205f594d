package errors

import "fmt"

// Error codes
const (
	ErrCodeInvalidConfiguration = "INVALID_CONFIGURATION"
	ErrCodeInvalidState         = "INVALID_STATE"
	ErrCodeOutOfRange           = "OUT_OF_RANGE"
	ErrCodeInvalidAnswer        = "INVALID_ANSWER"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeBadRequest           = "BAD_REQUEST"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "INVALID_STATE", "NOT_FOUND")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any *AppError carrying the same code, so the sentinels below
// work with errors.Is regardless of message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidConfiguration = &AppError{Code: ErrCodeInvalidConfiguration}
	ErrInvalidState         = &AppError{Code: ErrCodeInvalidState}
	ErrOutOfRange           = &AppError{Code: ErrCodeOutOfRange}
	ErrInvalidAnswer        = &AppError{Code: ErrCodeInvalidAnswer}
	ErrNotFound             = &AppError{Code: ErrCodeNotFound}
	ErrValidation           = &AppError{Code: ErrCodeValidation}
	ErrInternal             = &AppError{Code: ErrCodeInternal}
)

// NewInvalidConfigurationError reports authored content that cannot back a session.
func NewInvalidConfigurationError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfiguration,
		Message: reason,
		Status:  422,
	}
}

// NewInvalidStateError reports an operation invoked in a state that forbids it.
func NewInvalidStateError(op string, state fmt.Stringer) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidState,
		Message: fmt.Sprintf("%s not allowed in state %s", op, state),
		Status:  409,
	}
}

// NewOutOfRangeError reports a lookup with no element at the requested position.
func NewOutOfRangeError(what string) *AppError {
	return &AppError{
		Code:    ErrCodeOutOfRange,
		Message: what,
		Status:  404,
	}
}

// NewInvalidAnswerError reports an answer whose shape does not fit the question.
func NewInvalidAnswerError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidAnswer,
		Message: reason,
		Status:  400,
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}
