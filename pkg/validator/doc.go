// Package validator provides small, composable validation rules for form
// input.
//
// A Rule couples a boolean Check with translation-friendly error metadata.
// Rules are evaluated either with Apply, which runs every rule and aggregates
// the failures into ValidationErrors, or with First, which stops at the first
// failing rule and is meant for inputs that display one message at a time.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.EmailPattern("email", email),
//	    validator.MinLen("message", message, 10),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
//	verr, failed := validator.First(
//	    validator.Required("email", email).WithMessage("This field is required."),
//	    validator.When(email != "", validator.EmailPattern("email", email)),
//	)
//
// Lengths are counted in characters (runes), so "Żó" is two characters long.
// The package holds no mutable state and is safe for concurrent use.
package validator
