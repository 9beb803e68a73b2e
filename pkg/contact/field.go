package contact

// Recognized field names. Any other name is only subject to the required
// rule.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

const (
	minNameLength    = 2
	minMessageLength = 10
)

// Field is a form control as read at validation time.
type Field struct {
	Name     string
	Value    string
	Required bool
}

// Result is the verdict for one field. Message is empty when Valid; Key is
// the translation key of Message.
type Result struct {
	Valid   bool
	Message string
	Key     string
}

// User facing texts.
const (
	MsgRequired        = "This field is required."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgNameTooShort    = "Name must be at least 2 characters long."
	MsgMessageTooShort = "Message must be at least 10 characters long."
	MsgFormInvalid     = "Please fill in all required fields correctly."
	MsgSent            = "Message sent successfully! I'll get back to you soon."
	MsgFailed          = "Sorry, your message could not be sent. Please try again later."
)

// Translation keys of the texts above.
const (
	KeyRequired        = "contact.validation.required"
	KeyInvalidEmail    = "contact.validation.email"
	KeyNameTooShort    = "contact.validation.name_min_length"
	KeyMessageTooShort = "contact.validation.message_min_length"
	KeyFormInvalid     = "contact.form.invalid"
	KeySent            = "contact.form.sent"
	KeyFailed          = "contact.form.failed"
)
