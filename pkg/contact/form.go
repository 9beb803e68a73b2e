package contact

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/folio/pkg/async"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/notifications"
)

// Outcome is the result of a submission.
type Outcome int

const (
	// OutcomeInvalid means validation failed and nothing was submitted.
	OutcomeInvalid Outcome = iota
	OutcomeSent
	OutcomeFailed
	// OutcomeBusy means another submission was still pending.
	OutcomeBusy
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	case OutcomeBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Notifier shows a transient message to the visitor.
type Notifier interface {
	Notify(ctx context.Context, text string, typ notifications.Type) notifications.Notification
}

// View is the part of the page a Form drives besides notifications.
type View interface {
	FieldAnnotator
	// SetPending toggles the disabled "sending" state of the submit control.
	SetPending(pending bool)
	// Reset clears every field value and annotation.
	Reset()
}

// Form orchestrates validation, submission and feedback for one contact
// form. At most one submission is pending at a time.
type Form struct {
	notifier  Notifier
	submitter Submitter
	view      View
	translate Translator
	logger    *slog.Logger

	pending atomic.Bool
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithTranslator localizes field errors and notifications.
func WithTranslator(t Translator) FormOption {
	return func(f *Form) {
		if t != nil {
			f.translate = t
		}
	}
}

func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewForm creates a Form. A nil submitter means SimulatedSubmitter with the
// default latency.
func NewForm(notifier Notifier, submitter Submitter, view View, opts ...FormOption) *Form {
	if submitter == nil {
		submitter = SimulatedSubmitter{Latency: DefaultLatency}
	}
	f := &Form{
		notifier:  notifier,
		submitter: submitter,
		view:      view,
		translate: keepFallback,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit validates every field and, when all are valid, submits the message
// asynchronously.
//
// Invalid forms are annotated, an error notification is shown and a resolved
// OutcomeInvalid future is returned. Valid forms enter the pending state;
// once the submitter returns, pending is cleared and either a success
// notification is shown and the form reset (OutcomeSent), or an error
// notification is shown and the fields kept (OutcomeFailed together with the
// submitter error). Submit while pending returns OutcomeBusy without side
// effects.
//
// ctx is passed to the submitter. The pending state is always released, even
// when ctx is cancelled.
func (f *Form) Submit(ctx context.Context, fields []Field) *async.Future[Outcome] {
	if !f.pending.CompareAndSwap(false, true) {
		return async.Resolved(OutcomeBusy, nil)
	}

	if !validateForm(fields, f.view, f.translate) {
		f.pending.Store(false)
		f.notify(ctx, KeyFormInvalid, MsgFormInvalid, notifications.TypeError)
		f.logOutcome(ctx, OutcomeInvalid, 0, nil)
		return async.Resolved(OutcomeInvalid, nil)
	}

	f.view.SetPending(true)
	msg := MessageFromFields(fields)
	started := time.Now()

	return async.Async(context.WithoutCancel(ctx), msg, func(_ context.Context, msg Message) (Outcome, error) {
		err := f.submit(ctx, msg)

		f.view.SetPending(false)
		f.pending.Store(false)

		if err != nil {
			f.notify(ctx, KeyFailed, MsgFailed, notifications.TypeError)
			f.logOutcome(ctx, OutcomeFailed, time.Since(started), err)
			return OutcomeFailed, err
		}

		f.notify(ctx, KeySent, MsgSent, notifications.TypeSuccess)
		f.view.Reset()
		f.logOutcome(ctx, OutcomeSent, time.Since(started), nil)
		return OutcomeSent, nil
	})
}

// submit calls the submitter, turning a panic into a failed submission so
// the pending state is still released.
func (f *Form) submit(ctx context.Context, msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", async.ErrPanic, r)
		}
	}()
	return f.submitter.Submit(ctx, msg)
}

// Blur validates a single field as the visitor leaves it and updates its
// annotation.
func (f *Form) Blur(field Field) Result {
	return annotate(field, f.view, f.translate)
}

// Input clears the annotation of the named field while the visitor types.
func (f *Form) Input(name string) {
	f.view.ClearFieldError(name)
}

// Pending reports whether a submission is in flight.
func (f *Form) Pending() bool {
	return f.pending.Load()
}

func (f *Form) notify(ctx context.Context, key, fallback string, typ notifications.Type) {
	if f.notifier != nil {
		f.notifier.Notify(ctx, f.translate(key, fallback), typ)
	}
}

func (f *Form) logOutcome(ctx context.Context, outcome Outcome, took time.Duration, err error) {
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
	}
	f.logger.LogAttrs(ctx, level, "contact form submitted",
		logger.Component("contact"),
		logger.Outcome(outcome.String()),
		logger.Duration(took),
		logger.Error(err),
	)
}
