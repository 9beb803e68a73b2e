package portfolio

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/folio/handler"
	"github.com/dmitrymomot/folio/pkg/async"
	"github.com/dmitrymomot/folio/pkg/broadcast"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/notifications"
)

// Page is the server side state of one open portfolio page: its
// notification slot, its contact form and the streams feeding the browser.
type Page struct {
	ID       string
	Notifier *notifications.Notifier
	Form     *contact.Form

	l       localizer
	log     *slog.Logger
	surface *notifications.BroadcastSurface
	patches *broadcast.MemoryBroadcaster[handler.TemplPatch]

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

type pageDeps struct {
	l         localizer
	log       *slog.Logger
	submitter contact.Submitter
	notifier  []notifications.Option
	buffer    int
}

func newPage(d pageDeps) *Page {
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	p := &Page{
		ID:      id,
		l:       d.l,
		log:     d.log.With(logger.PageID(id)),
		surface: notifications.NewBroadcastSurface(d.buffer),
		patches: broadcast.NewMemoryBroadcaster[handler.TemplPatch](d.buffer),
		ctx:     ctx,
		cancel:  cancel,
	}

	p.Notifier = notifications.NewNotifier(p.surface,
		append([]notifications.Option{notifications.WithLogger(p.log)}, d.notifier...)...)
	p.Form = contact.NewForm(p.Notifier, d.submitter, pageView{p},
		contact.WithTranslator(d.l.Td),
		contact.WithLogger(p.log),
	)
	return p
}

// Lang is the language the page was rendered in.
func (p *Page) Lang() string { return p.l.lang }

// Submit submits the contact form. The submission outlives the request that
// started it and is cancelled when the page closes; ctx only contributes its
// values.
func (p *Page) Submit(ctx context.Context, fields []contact.Field) *async.Future[contact.Outcome] {
	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(p.ctx, cancel)

	future := p.Form.Submit(sctx, fields)
	go func() {
		<-future.Done()
		stop()
		cancel()
	}()
	return future
}

// Stream forwards notification events and form patches to the browser until
// the stream or the page ends.
func (p *Page) Stream(stream handler.StreamContext) error {
	ctx, cancel := context.WithCancel(stream)
	defer cancel()
	stop := context.AfterFunc(p.ctx, cancel)
	defer stop()

	events := p.surface.Subscribe(ctx)
	defer events.Close()
	patches := p.patches.Subscribe(ctx)
	defer patches.Close()

	p.log.DebugContext(ctx, "page stream opened")
	defer p.log.DebugContext(stream, "page stream closed")

	// Bring a reconnecting browser up to date.
	if n, ok := p.Notifier.Current(); ok {
		phase, _ := p.Notifier.Phase()
		if err := stream.SendComponent(notificationRoot(p.ID, &n, phase == notifications.PhaseLeaving, p.l)); err != nil {
			return err
		}
	}

	eventCh := events.Receive(ctx)
	patchCh := patches.Receive(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-eventCh:
			if !ok {
				return p.streamEnded(ctx, events.Err())
			}
			if err := stream.SendComponent(p.notificationPatch(msg.Data)); err != nil {
				return err
			}
		case msg, ok := <-patchCh:
			if !ok {
				return p.streamEnded(ctx, patches.Err())
			}
			if err := stream.SendMultiple(msg.Data); err != nil {
				return err
			}
		}
	}
}

// streamEnded ends a stream whose subscription closed. A stream that fell
// behind is logged; the browser reconnects and is brought up to date.
func (p *Page) streamEnded(ctx context.Context, err error) error {
	if errors.Is(err, broadcast.ErrSlowSubscriber) {
		p.log.WarnContext(ctx, "page stream fell behind", logger.Error(err))
	}
	return nil
}

func (p *Page) notificationPatch(e notifications.Event) handler.TemplComponent {
	switch e.Action {
	case notifications.ActionShow:
		return notificationRoot(p.ID, &e.Notification, false, p.l)
	case notifications.ActionDismiss:
		return notificationRoot(p.ID, &e.Notification, true, p.l)
	default:
		return notificationRoot(p.ID, nil, false, p.l)
	}
}

// Subscribers reports how many streams are attached to the page.
func (p *Page) Subscribers() int {
	return p.patches.Subscribers()
}

// Close stops the page timers, cancels pending submissions and ends its
// streams. It is idempotent.
func (p *Page) Close() {
	p.once.Do(func() {
		p.cancel()
		p.Notifier.Stop()
		_ = p.surface.Close()
		_ = p.patches.Close()
		p.log.Debug("page closed")
	})
}

func (p *Page) publish(component handler.TemplComponent, opts ...handler.TemplOption) {
	_ = p.patches.Broadcast(p.ctx, broadcast.Message[handler.TemplPatch]{Data: handler.Patch(component, opts...)})
}

// pageView applies form feedback to the browser through the patch stream.
type pageView struct{ p *Page }

func (v pageView) SetFieldError(name, message string) {
	v.p.publish(fieldError(name, message))
}

func (v pageView) ClearFieldError(name string) {
	v.p.publish(fieldError(name, ""))
}

func (v pageView) SetPending(pending bool) {
	v.p.publish(submitButton(pending, v.p.l))
}

func (v pageView) Reset() {
	v.p.publish(contactForm(v.p.ID, v.p.l), handler.WithPatchMode(handler.PatchReplace))
}
