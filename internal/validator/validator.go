package validator

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/ohtu-ilmo/review-service/internal/errors"
	"github.com/ohtu-ilmo/review-service/internal/models"
	"github.com/ohtu-ilmo/review-service/internal/review"
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// Validator validates request structs against their struct tags.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with all custom rules registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// Validate checks struct tags and converts failures to ValidationErrors.
func (v *Validator) Validate(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if verrs := apperrors.ToValidationErrors(err); len(verrs) > 0 {
			return verrs
		}
		return err
	}
	return nil
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("topic_filter", validateTopicFilter)
}

func validateQuestionType(fl validator.FieldLevel) bool {
	switch review.QuestionType(fl.Field().String()) {
	case review.QuestionText, review.QuestionNumber, review.QuestionInfo:
		return true
	}
	return false
}

func validateTopicFilter(fl validator.FieldLevel) bool {
	switch models.TopicFilter(fl.Field().String()) {
	case models.TopicFilterAll, models.TopicFilterActive, models.TopicFilterInactive:
		return true
	}
	return false
}
