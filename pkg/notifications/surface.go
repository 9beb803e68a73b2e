package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/folio/pkg/logger"
)

// Surface displays notifications. The Notifier calls it while holding its
// lock, so calls for one Notifier arrive in order and implementations must
// not call back into that Notifier.
type Surface interface {
	// Show displays n.
	Show(ctx context.Context, n Notification) error
	// Dismiss starts the exit transition of n.
	Dismiss(ctx context.Context, n Notification) error
	// Remove detaches n from display.
	Remove(ctx context.Context, n Notification) error
}

// NoOpSurface discards everything.
type NoOpSurface struct{}

func (NoOpSurface) Show(context.Context, Notification) error    { return nil }
func (NoOpSurface) Dismiss(context.Context, Notification) error { return nil }
func (NoOpSurface) Remove(context.Context, Notification) error  { return nil }

// MultiSurface fans out to several surfaces. Delivery is best effort: a
// failing surface is logged and the rest still receive the call.
type MultiSurface struct {
	surfaces []Surface
	logger   *slog.Logger
}

func NewMultiSurface(log *slog.Logger, surfaces ...Surface) *MultiSurface {
	if log == nil {
		log = logger.Discard()
	}
	return &MultiSurface{surfaces: surfaces, logger: log}
}

func (m *MultiSurface) Show(ctx context.Context, n Notification) error {
	m.each(ctx, "show", n, Surface.Show)
	return nil
}

func (m *MultiSurface) Dismiss(ctx context.Context, n Notification) error {
	m.each(ctx, "dismiss", n, Surface.Dismiss)
	return nil
}

func (m *MultiSurface) Remove(ctx context.Context, n Notification) error {
	m.each(ctx, "remove", n, Surface.Remove)
	return nil
}

func (m *MultiSurface) each(ctx context.Context, event string, n Notification, call func(Surface, context.Context, Notification) error) {
	for i, s := range m.surfaces {
		if err := call(s, ctx, n); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "surface failed",
				logger.Event(event),
				logger.Generation(n.Generation),
				slog.Int("surface_index", i),
				logger.Error(err),
			)
		}
	}
}
