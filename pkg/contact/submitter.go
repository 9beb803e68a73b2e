package contact

import (
	"context"
	"strings"
	"time"
)

// DefaultLatency is how long SimulatedSubmitter takes by default.
const DefaultLatency = 2 * time.Second

// Message is the payload collected from a valid form.
type Message struct {
	Name  string
	Email string
	Body  string
}

// MessageFromFields collects the trimmed values of the recognized fields.
func MessageFromFields(fields []Field) Message {
	var m Message
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		switch f.Name {
		case FieldName:
			m.Name = v
		case FieldEmail:
			m.Email = v
		case FieldMessage:
			m.Body = v
		}
	}
	return m
}

// Submitter delivers a contact message.
type Submitter interface {
	Submit(ctx context.Context, m Message) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, m Message) error

func (f SubmitterFunc) Submit(ctx context.Context, m Message) error { return f(ctx, m) }

// SimulatedSubmitter stands in for a delivery backend: it waits Latency and
// succeeds, or returns the context error if ctx ends first.
type SimulatedSubmitter struct {
	Latency time.Duration
}

func (s SimulatedSubmitter) Submit(ctx context.Context, _ Message) error {
	latency := s.Latency
	if latency <= 0 {
		latency = DefaultLatency
	}

	t := time.NewTimer(latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
