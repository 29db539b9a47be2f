package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeValidation             = "VALIDATION_ERROR"
	ErrCodeInternal               = "INTERNAL_ERROR"
	ErrCodeBadRequest             = "BAD_REQUEST"
	ErrCodeUnitNotStarted         = "UNIT_NOT_STARTED"
	ErrCodeUnitArchived           = "UNIT_ARCHIVED"
	ErrCodeStateConflict          = "STATE_CONFLICT"
	ErrCodeConcurrentModification = "CONCURRENT_MODIFICATION"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code      string // Error code (e.g., "NOT_FOUND", "STATE_CONFLICT")
	Message   string // Human-readable error message
	Status    int    // HTTP status code
	Retryable bool   // Whether the caller should refetch and resubmit
	Err       error  // Wrapped underlying error (optional)
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

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
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

// NewUnitNotStartedError signals a review against a unit with no record,
// i.e. the student was never enrolled in a course containing it.
func NewUnitNotStartedError(studentID, unitID int64) *AppError {
	return &AppError{
		Code:    ErrCodeUnitNotStarted,
		Message: fmt.Sprintf("unit %d is not tracked for student %d", unitID, studentID),
		Status:  409,
	}
}

// NewUnitArchivedError signals an operation against a soft-archived record.
func NewUnitArchivedError(studentID, unitID int64) *AppError {
	return &AppError{
		Code:    ErrCodeUnitArchived,
		Message: fmt.Sprintf("unit %d is archived for student %d", unitID, studentID),
		Status:  409,
	}
}

// NewStateConflictError signals that the record is in the wrong status for
// the requested transition. The caller must refetch current state.
func NewStateConflictError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeStateConflict,
		Message: message,
		Status:  409,
	}
}

// NewConcurrentModificationError signals a version mismatch on write.
// Retryable: the caller is expected to refetch and resubmit.
func NewConcurrentModificationError(studentID, unitID int64) *AppError {
	return &AppError{
		Code:      ErrCodeConcurrentModification,
		Message:   fmt.Sprintf("record for student %d unit %d was modified concurrently", studentID, unitID),
		Status:    409,
		Retryable: true,
	}
}
