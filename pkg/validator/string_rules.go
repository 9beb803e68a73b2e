package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString fails for empty or whitespace-only values.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLenString fails when value has fewer than minLen characters.
func MinLenString(field, value string, minLen int) Rule {
	return lengthRule(field, value, "min", minLen, "must be at least %d characters long",
		func(n int) bool { return n >= minLen })
}

// MaxLenString fails when value has more than maxLen characters.
func MaxLenString(field, value string, maxLen int) Rule {
	return lengthRule(field, value, "max", maxLen, "must be at most %d characters long",
		func(n int) bool { return n <= maxLen })
}

// Lengths are counted in code points, so an emoji is one character.
func lengthRule(field, value, bound string, limit int, format string, ok func(n int) bool) Rule {
	return Rule{
		Check: func() bool { return ok(utf8.RuneCountInString(value)) },
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf(format, limit),
			TranslationKey: "validation." + bound + "_length",
			TranslationValues: map[string]any{
				"field": field,
				bound:   limit,
			},
		},
	}
}

func Required(field, value string) Rule { return RequiredString(field, value) }

func MinLen(field, value string, minLen int) Rule { return MinLenString(field, value, minLen) }

func MaxLen(field, value string, maxLen int) Rule { return MaxLenString(field, value, maxLen) }
