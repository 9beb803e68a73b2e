package notifications

import (
	"context"

	"github.com/dmitrymomot/folio/pkg/broadcast"
)

// BroadcastSurface publishes every surface call as an Event, for transports
// such as an SSE stream that render notifications remotely.
type BroadcastSurface struct {
	b broadcast.Broadcaster[Event]
}

// NewBroadcastSurface creates a surface backed by an in-memory broadcaster.
// bufferSize bounds how far a subscriber may lag before it is dropped.
func NewBroadcastSurface(bufferSize int) *BroadcastSurface {
	return &BroadcastSurface{b: broadcast.NewMemoryBroadcaster[Event](bufferSize)}
}

func (s *BroadcastSurface) Show(ctx context.Context, n Notification) error {
	return s.publish(ctx, ActionShow, n)
}

func (s *BroadcastSurface) Dismiss(ctx context.Context, n Notification) error {
	return s.publish(ctx, ActionDismiss, n)
}

func (s *BroadcastSurface) Remove(ctx context.Context, n Notification) error {
	return s.publish(ctx, ActionRemove, n)
}

// Subscribe returns a subscription that ends when ctx is done or the
// surface is closed.
func (s *BroadcastSurface) Subscribe(ctx context.Context) broadcast.Subscriber[Event] {
	return s.b.Subscribe(ctx)
}

// Close ends every subscription.
func (s *BroadcastSurface) Close() error {
	return s.b.Close()
}

func (s *BroadcastSurface) publish(ctx context.Context, action Action, n Notification) error {
	return s.b.Broadcast(ctx, broadcast.Message[Event]{Data: Event{Action: action, Notification: n}})
}
