package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// emailShape accepts local@domain.tld where no part contains whitespace or '@'.
// Whitespace includes the vertical tab, Unicode separators and the BOM.
// It is a shape check for form input, not an RFC 5322 parser.
var emailShape = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)

// MatchesRegex validates against custom patterns. Compiles regex on each call - cache externally and use MatchesPattern for hot paths.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	return MatchesPattern(field, value, regexp.MustCompile(pattern), description)
}

// MatchesPattern validates value against a precompiled pattern. Blank values fail.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// EmailPattern checks the loose local@domain.tld shape used by contact forms.
func EmailPattern(field, value string) Rule {
	return MatchesPattern(field, value, emailShape, "email").
		WithTranslationKey("validation.email").
		WithMessage("must be a valid email address")
}
