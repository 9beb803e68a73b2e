package broadcast

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrClosed ends a subscription closed by its owner or by the broadcaster.
	ErrClosed = errors.New("broadcast: closed")
	// ErrSlowSubscriber ends a subscription whose buffer was full when a
	// message arrived. The subscriber has missed that message.
	ErrSlowSubscriber = errors.New("broadcast: subscriber too slow")
)

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber is one consumer's view of a broadcast stream. Methods are safe
// for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the message channel. It is closed when the
	// subscription ends, and Err then reports why.
	Receive(ctx context.Context) <-chan Message[T]

	// Err is nil while the subscription is live. Afterwards it is ErrClosed,
	// ErrSlowSubscriber or the error of the context passed to Subscribe.
	Err() error

	// Close ends the subscription. Repeated calls are no-ops.
	Close() error
}

// Broadcaster fans messages out to every live subscriber without blocking:
// a subscriber that cannot keep up is dropped with ErrSlowSubscriber.
type Broadcaster[T any] interface {
	// Subscribe starts a subscription that ends when ctx is done. A closed
	// broadcaster returns an already ended subscription.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast delivers msg to all live subscribers. It is a no-op once the
	// broadcaster is closed.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Subscribers reports how many subscriptions are live.
	Subscribers() int

	// Close ends every subscription with ErrClosed.
	Close() error
}

type subscriber[T any] struct {
	mu  sync.RWMutex
	ch  chan Message[T]
	err error
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan Message[T], bufferSize)}
}

func (s *subscriber[T]) Receive(context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *subscriber[T]) Close() error {
	s.end(ErrClosed)
	return nil
}

// end closes the channel once; the first reason wins.
func (s *subscriber[T]) end(reason error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	s.err = reason
	close(s.ch)
}

// send delivers msg unless the subscription has ended or its buffer is full.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return false
	}
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
