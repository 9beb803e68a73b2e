package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/folio/pkg/logger"
)

const (
	DefaultAutoDismiss = 5 * time.Second
	DefaultExitDelay   = 300 * time.Millisecond
)

// Notifier owns a single display slot. A new notification replaces the
// current one at once; an existing one leaves in two phases (leaving for the
// exit delay, then removed) after an explicit Close or the auto-dismiss
// timeout.
//
// Timers capture the generation they were scheduled for and do nothing once
// the slot holds a different generation or has already moved past the phase
// they expect.
type Notifier struct {
	surface     Surface
	clock       Clock
	autoDismiss time.Duration
	exitDelay   time.Duration
	logger      *slog.Logger

	mu         sync.Mutex
	generation uint64
	current    *slot
	stopped    bool
}

type slot struct {
	n     Notification
	phase Phase
	timer Timer
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAutoDismiss sets how long a notification stays visible. Zero disables
// auto-dismiss.
func WithAutoDismiss(d time.Duration) Option {
	return func(n *Notifier) {
		if d >= 0 {
			n.autoDismiss = d
		}
	}
}

// WithExitDelay sets the length of the leaving phase. Zero removes
// immediately.
func WithExitDelay(d time.Duration) Option {
	return func(n *Notifier) {
		if d >= 0 {
			n.exitDelay = d
		}
	}
}

func WithClock(c Clock) Option {
	return func(n *Notifier) {
		if c != nil {
			n.clock = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewNotifier creates a Notifier rendering to surface. A nil surface
// discards output.
func NewNotifier(surface Surface, opts ...Option) *Notifier {
	if surface == nil {
		surface = NoOpSurface{}
	}
	n := &Notifier{
		surface:     surface,
		clock:       systemClock{},
		autoDismiss: DefaultAutoDismiss,
		exitDelay:   DefaultExitDelay,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify displays text, removing any current notification without an exit
// phase, and schedules auto-dismiss. Unknown types render as info. Notify
// never fails; surface errors are logged.
func (n *Notifier) Notify(ctx context.Context, text string, typ Type) Notification {
	ctx = context.WithoutCancel(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()

	if cur := n.current; cur != nil {
		n.stopTimer(cur)
		n.current = nil
		n.call(ctx, ActionRemove, cur.n)
	}

	n.generation++
	note := Notification{
		ID:         uuid.NewString(),
		Generation: n.generation,
		Type:       ParseType(string(typ)),
		Message:    text,
		CreatedAt:  n.clock.Now(),
	}
	cur := &slot{n: note, phase: PhaseVisible}
	n.current = cur
	n.call(ctx, ActionShow, note)

	if n.autoDismiss > 0 && !n.stopped {
		gen := note.Generation
		cur.timer = n.clock.AfterFunc(n.autoDismiss, func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if n.dismissLocked(ctx, gen) {
				n.logger.LogAttrs(ctx, slog.LevelDebug, "notification auto-dismissed",
					logger.Component("notifier"),
					logger.Generation(gen),
				)
			}
		})
	}

	n.logger.LogAttrs(ctx, slog.LevelDebug, "notification shown",
		logger.Component("notifier"),
		logger.Generation(note.Generation),
		logger.NotificationType(string(note.Type)),
	)
	return note
}

// Close starts the exit of the notification with the given generation. It
// returns false when that notification is no longer displayed or is already
// leaving.
func (n *Notifier) Close(ctx context.Context, generation uint64) bool {
	ctx = context.WithoutCancel(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dismissLocked(ctx, generation)
}

// Current returns the displayed notification, including one in its leaving
// phase.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return n.current.n, true
}

// Phase returns the phase of the displayed notification.
func (n *Notifier) Phase() (Phase, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return PhaseVisible, false
	}
	return n.current.phase, true
}

// Count returns the number of displayed notifications, which is 0 or 1.
func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return 0
	}
	return 1
}

// Stop cancels pending timers. The current notification, if any, stays in
// its phase; later Notify calls still display but never expire.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopped = true
	if n.current != nil {
		n.stopTimer(n.current)
	}
}

func (n *Notifier) dismissLocked(ctx context.Context, gen uint64) bool {
	cur := n.current
	if cur == nil || cur.n.Generation != gen || cur.phase != PhaseVisible {
		return false
	}

	n.stopTimer(cur)
	cur.phase = PhaseLeaving
	n.call(ctx, ActionDismiss, cur.n)

	if n.exitDelay == 0 {
		n.removeLocked(ctx, gen)
		return true
	}
	if !n.stopped {
		cur.timer = n.clock.AfterFunc(n.exitDelay, func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			n.removeLocked(ctx, gen)
		})
	}
	return true
}

func (n *Notifier) removeLocked(ctx context.Context, gen uint64) {
	cur := n.current
	if cur == nil || cur.n.Generation != gen || cur.phase != PhaseLeaving {
		return
	}
	n.current = nil
	n.call(ctx, ActionRemove, cur.n)
}

func (n *Notifier) stopTimer(s *slot) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (n *Notifier) call(ctx context.Context, action Action, note Notification) {
	var err error
	switch action {
	case ActionShow:
		err = n.surface.Show(ctx, note)
	case ActionDismiss:
		err = n.surface.Dismiss(ctx, note)
	case ActionRemove:
		err = n.surface.Remove(ctx, note)
	}
	if err != nil {
		n.logger.LogAttrs(ctx, slog.LevelWarn, "notification surface failed",
			logger.Component("notifier"),
			logger.Event(string(action)),
			logger.Generation(note.Generation),
			logger.Error(err),
		)
	}
}
