package notifications

import "time"

// Type is the notification kind. It only affects presentation.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// ParseType maps s to a known Type. Anything unrecognized is info.
func ParseType(s string) Type {
	switch t := Type(s); t {
	case TypeSuccess, TypeError:
		return t
	default:
		return TypeInfo
	}
}

// Style is the visual treatment of a notification type.
type Style struct {
	Background string
	Icon       string
}

var palette = map[Type]Style{
	TypeSuccess: {Background: "#00ff88", Icon: "check-circle"},
	TypeError:   {Background: "#ff4757", Icon: "exclamation-circle"},
	TypeInfo:    {Background: "#64ffda", Icon: "info-circle"},
}

// Style returns the palette entry for t, falling back to info.
func (t Type) Style() Style {
	if s, ok := palette[t]; ok {
		return s
	}
	return palette[TypeInfo]
}

// Phase is the display phase of the current notification.
type Phase int

const (
	PhaseVisible Phase = iota
	// PhaseLeaving lasts for the exit delay, after which the notification is
	// removed.
	PhaseLeaving
)

func (p Phase) String() string {
	if p == PhaseLeaving {
		return "leaving"
	}
	return "visible"
}

// Notification is one displayed message. Generation identifies it within its
// Notifier and strictly increases with every Notify call.
type Notification struct {
	ID         string    `json:"id"`
	Generation uint64    `json:"generation"`
	Type       Type      `json:"type"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
