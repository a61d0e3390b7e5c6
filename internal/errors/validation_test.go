package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("group_name", "is required", "")

	assert.Equal(t, "group_name", err.Field)
	assert.Equal(t, "is required", err.Message)
	assert.Equal(t, "validation error on field 'group_name': is required", err.Error())
}

func TestValidationErrors_ErrorMessage(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("title", "is required", nil))
	assert.Equal(t, "validation failed: title is required", errs.Error())

	errs = append(errs, *NewValidationError("email", "must be a valid email address", nil))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("filter", "must be all, active or inactive", "topic_filter", "bogus")

	assert.Equal(t, "topic_filter", err.Rule)
	assert.Equal(t, "filter", err.Field)
	assert.Equal(t, "bogus", err.Value)
}
