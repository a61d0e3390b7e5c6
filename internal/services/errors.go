package services

import (
	"errors"

	apperrors "github.com/ohtu-ilmo/review-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrConflict         = errors.New("resource conflict")

	// Review specific errors
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("this group has already been reviewed")
	ErrGroupNotFound       = errors.New("group not found")
	ErrEmptyAnswerSheet    = errors.New("answer sheet is empty")

	// Topic specific errors
	ErrTopicNotFound = errors.New("topic not found")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrReviewNotFound) ||
		errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrTopicNotFound)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrReviewAlreadyExists)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrEmptyAnswerSheet) {
		return true
	}
	var ve ValidationErrors
	return errors.As(err, &ve)
}
