package contact

import (
	"strings"

	"github.com/dmitrymomot/folio/pkg/validator"
)

// FieldAnnotator shows or clears the inline error of a field.
type FieldAnnotator interface {
	SetFieldError(name, message string)
	ClearFieldError(name string)
}

// Validate checks one field. The value is trimmed first, then the rules run
// in order and the first failure wins:
//
//  1. required and empty
//  2. email that does not look like an address
//  3. name shorter than 2 characters
//  4. message shorter than 10 characters
//
// Lengths count characters, not bytes. Validate is total and pure.
func Validate(f Field) Result {
	value := strings.TrimSpace(f.Value)
	present := value != ""

	verr, failed := validator.First(
		validator.When(f.Required,
			validator.RequiredString(f.Name, value).
				WithMessage(MsgRequired).
				WithTranslationKey(KeyRequired)),
		validator.When(f.Name == FieldEmail && present,
			validator.EmailPattern(f.Name, value).
				WithMessage(MsgInvalidEmail).
				WithTranslationKey(KeyInvalidEmail)),
		validator.When(f.Name == FieldName && present,
			validator.MinLenString(f.Name, value, minNameLength).
				WithMessage(MsgNameTooShort).
				WithTranslationKey(KeyNameTooShort)),
		validator.When(f.Name == FieldMessage && present,
			validator.MinLenString(f.Name, value, minMessageLength).
				WithMessage(MsgMessageTooShort).
				WithTranslationKey(KeyMessageTooShort)),
	)
	if !failed {
		return Result{Valid: true}
	}
	return Result{Message: verr.Message, Key: verr.TranslationKey}
}

// ValidateForm validates every field that is required or holds a value and
// annotates each of them, without stopping at the first invalid one. Empty
// optional fields are skipped. It reports whether all evaluated fields are
// valid.
func ValidateForm(fields []Field, a FieldAnnotator) bool {
	return validateForm(fields, a, keepFallback)
}

func validateForm(fields []Field, a FieldAnnotator, translate Translator) bool {
	valid := true
	for _, f := range fields {
		if !f.Required && strings.TrimSpace(f.Value) == "" {
			continue
		}
		if !annotate(f, a, translate).Valid {
			valid = false
		}
	}
	return valid
}

func annotate(f Field, a FieldAnnotator, translate Translator) Result {
	res := Validate(f)
	if res.Valid {
		a.ClearFieldError(f.Name)
	} else {
		a.SetFieldError(f.Name, translate(res.Key, res.Message))
	}
	return res
}

// Translator resolves a translation key, returning fallback when the key is
// unknown.
type Translator func(key, fallback string) string

func keepFallback(_, fallback string) string { return fallback }
