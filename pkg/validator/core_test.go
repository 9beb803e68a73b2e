package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "message", Message: "too short"})

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "email: is required")
		assert.Contains(t, msg, "message: too short")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "name", Message: "too short"},
		{Field: "email", Message: "invalid"},
		{Field: "name", Message: "required"},
	}

	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("message"))
	assert.Equal(t, []string{"too short", "required"}, errs.Get("name"))
	assert.Len(t, errs.GetErrors("email"), 1)
	assert.Equal(t, []string{"name", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Al"),
			validator.MinLen("name", "Al", 2),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.EmailPattern("email", "bad"),
			validator.MinLen("message", "short", 10),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"name", "email", "message"}, errs.Fields())
	})
}

func TestFirst(t *testing.T) {
	t.Run("returns false when all rules pass", func(t *testing.T) {
		_, failed := validator.First(validator.Required("name", "Al"))
		assert.False(t, failed)
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		evaluated := false
		later := validator.Rule{
			Check: func() bool {
				evaluated = true
				return false
			},
			Error: validator.ValidationError{Field: "name", Message: "later"},
		}

		verr, failed := validator.First(
			validator.Required("name", "  "),
			later,
		)
		require.True(t, failed)
		assert.Equal(t, "field is required", verr.Message)
		assert.False(t, evaluated, "rules after the first failure must not run")
	})

	t.Run("empty rule list passes", func(t *testing.T) {
		_, failed := validator.First()
		assert.False(t, failed)
	})
}

func TestWhen(t *testing.T) {
	failing := validator.Required("email", "")

	assert.True(t, validator.When(false, failing).Check(), "disabled rule passes")
	assert.False(t, validator.When(true, failing).Check(), "enabled rule keeps its check")
	assert.Equal(t, failing.Error, validator.When(true, failing).Error)
}

func TestRule_Overrides(t *testing.T) {
	rule := validator.Required("name", "").
		WithMessage("This field is required.").
		WithTranslationKey("contact.required")

	assert.Equal(t, "This field is required.", rule.Error.Message)
	assert.Equal(t, "contact.required", rule.Error.TranslationKey)
	assert.Equal(t, "name", rule.Error.Field)
	assert.False(t, rule.Check())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		err := validator.Apply(validator.Required("name", ""))
		wrapped := errors.Join(errors.New("submit"), err)

		assert.True(t, validator.IsValidationError(wrapped))
		assert.True(t, validator.ExtractValidationErrors(wrapped).Has("name"))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	})
}
