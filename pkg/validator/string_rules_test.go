package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/folio/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("email", "test@example.com")
		assert.True(t, rule.Check())
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "email"}, rule.Error.TranslationValues)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("email", "").Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("email", " \t\n ").Check())
	})

	t.Run("passes for string with surrounding whitespace but content", func(t *testing.T) {
		assert.True(t, validator.RequiredString("name", "  John  ").Check())
	})
}

func TestMinLenString(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   int
		want  bool
	}{
		{"equal to minimum", "12345", 5, true},
		{"above minimum", "123456", 5, true},
		{"below minimum", "1234", 5, false},
		{"zero minimum", "", 0, true},
		{"multibyte characters count once", "Żó", 2, true},
		{"emoji counts once", "👋", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.MinLenString("text", tt.value, tt.min)
			assert.Equal(t, tt.want, rule.Check())
		})
	}

	t.Run("error metadata", func(t *testing.T) {
		rule := validator.MinLenString("message", "", 10)
		assert.Equal(t, "must be at least 10 characters long", rule.Error.Message)
		assert.Equal(t, "validation.min_length", rule.Error.TranslationKey)
		assert.Equal(t, 10, rule.Error.TranslationValues["min"])
	})
}

func TestMaxLenString(t *testing.T) {
	assert.True(t, validator.MaxLenString("name", "12345", 5).Check())
	assert.False(t, validator.MaxLenString("name", "123456", 5).Check())
	assert.True(t, validator.MaxLenString("name", "ñññññ", 5).Check())

	rule := validator.MaxLen("name", "", 5)
	assert.Equal(t, "must be at most 5 characters long", rule.Error.Message)
	assert.Equal(t, "validation.max_length", rule.Error.TranslationKey)
}
