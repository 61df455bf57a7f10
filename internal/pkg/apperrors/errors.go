package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrValidationFailed      = errors.New("validation failed")
)

// Department Errors
var (
	ErrDepartmentNotFound      = NewCustomError(ErrResourceNotFound, "department not found")
	ErrDepartmentAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "department with this code already exists")
)

// Course Errors
var (
	ErrCourseNotFound      = NewCustomError(ErrResourceNotFound, "course not found")
	ErrCourseAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "course with this code already exists")
)

// Professor Errors
var (
	ErrProfessorNotFound   = NewCustomError(ErrResourceNotFound, "professor not found")
	ErrProfessorSlugExists = NewCustomError(ErrResourceAlreadyExists, "professor with this slug already exists")
)

// Review Errors
var (
	ErrReviewNotFound = NewCustomError(ErrResourceNotFound, "review not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}
