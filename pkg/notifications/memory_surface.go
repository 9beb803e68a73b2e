package notifications

import (
	"context"
	"sync"
)

// Action names a surface call.
type Action string

const (
	ActionShow    Action = "show"
	ActionDismiss Action = "dismiss"
	ActionRemove  Action = "remove"
)

// Event is one surface call.
type Event struct {
	Action       Action       `json:"action"`
	Notification Notification `json:"notification"`
}

// MemorySurface keeps what is on display plus the full call history.
type MemorySurface struct {
	mu        sync.RWMutex
	displayed map[uint64]Notification
	phases    map[uint64]Phase
	history   []Event
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{
		displayed: make(map[uint64]Notification),
		phases:    make(map[uint64]Phase),
	}
}

func (s *MemorySurface) Show(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayed[n.Generation] = n
	s.phases[n.Generation] = PhaseVisible
	s.history = append(s.history, Event{Action: ActionShow, Notification: n})
	return nil
}

func (s *MemorySurface) Dismiss(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.displayed[n.Generation]; ok {
		s.phases[n.Generation] = PhaseLeaving
	}
	s.history = append(s.history, Event{Action: ActionDismiss, Notification: n})
	return nil
}

func (s *MemorySurface) Remove(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.displayed, n.Generation)
	delete(s.phases, n.Generation)
	s.history = append(s.history, Event{Action: ActionRemove, Notification: n})
	return nil
}

// Displayed returns the notifications currently on display.
func (s *MemorySurface) Displayed() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, 0, len(s.displayed))
	for _, n := range s.displayed {
		out = append(out, n)
	}
	return out
}

// Count returns how many notifications are on display.
func (s *MemorySurface) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.displayed)
}

// Phase returns the display phase of the notification with generation gen.
func (s *MemorySurface) Phase(gen uint64) (Phase, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.phases[gen]
	return p, ok
}

// History returns a copy of every call received so far.
func (s *MemorySurface) History() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event(nil), s.history...)
}
