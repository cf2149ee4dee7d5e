package alert

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"k8s.io/utils/clock"
)

// DismissHook observes every Live -> Dismissed transition.
type DismissHook func(n Notification, reason Reason)

// Option configures a List.
type Option func(*List)

// WithDismissHook registers fn to run after a notification is dismissed.
// The hook runs outside the list lock and is never called after Close.
func WithDismissHook(fn DismissHook) Option {
	return func(l *List) { l.onDismiss = fn }
}

// WithIDGenerator replaces the default UUID based ids.
func WithIDGenerator(fn func() string) Option {
	return func(l *List) { l.newID = fn }
}

type entry struct {
	n     Notification
	timer clock.Timer // nil once fired, cancelled, or torn down
}

// List is an append-only, ordered set of notifications.
type List struct {
	clock     clock.WithDelayedExecution
	newID     func() string
	onDismiss DismissHook

	mu      sync.Mutex
	entries []*entry
	index   map[string]*entry
	closed  bool
}

// NewList returns an empty list whose timers are scheduled on clk.
func NewList(clk clock.WithDelayedExecution, opts ...Option) *List {
	l := &List{
		clock: clk,
		newID: uuid.NewString,
		index: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append adds a live notification and starts its auto-close timer.
func (l *List) Append(opts Options) (Notification, error) {
	opts, err := opts.normalize()
	if err != nil {
		return Notification{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return Notification{}, ErrClosed
	}

	e := &entry{
		n: Notification{
			ID:        l.newID(),
			Message:   opts.Message,
			Severity:  opts.Severity,
			AutoClose: opts.AutoClose,
			CreatedAt: l.clock.Now(),
		},
	}
	e.timer = l.clock.AfterFunc(opts.AutoClose, func() { l.expire(e) })

	l.entries = append(l.entries, e)
	l.index[e.n.ID] = e

	log.Debug().
		Str("id", e.n.ID).
		Str("severity", string(e.n.Severity)).
		Dur("auto_close", e.n.AutoClose).
		Msg("alert appended")

	return e.n, nil
}

func (l *List) expire(e *entry) {
	l.mu.Lock()
	if l.closed || e.n.Dismissed {
		l.mu.Unlock()
		return
	}
	e.n.Dismissed = true
	e.timer = nil
	n, hook := e.n, l.onDismiss
	l.mu.Unlock()

	if hook != nil {
		hook(n, ReasonExpired)
	}
}

// Dismiss closes the notification with the given id ahead of its timer.
// It reports whether a transition happened; dismissing an unknown or already
// dismissed notification, or any notification of a closed list, is a no-op.
func (l *List) Dismiss(id string) bool {
	l.mu.Lock()
	e, ok := l.index[id]
	if !ok || l.closed || e.n.Dismissed {
		l.mu.Unlock()
		return false
	}
	e.n.Dismissed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	n, hook := e.n, l.onDismiss
	l.mu.Unlock()

	if hook != nil {
		hook(n, ReasonManual)
	}
	return true
}

// Live returns the notifications that have not been dismissed, oldest first.
func (l *List) Live() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Notification, 0, len(l.entries))
	for _, e := range l.entries {
		if !e.n.Dismissed {
			out = append(out, e.n)
		}
	}
	return out
}

// All returns every notification ever appended, dismissed ones included.
func (l *List) All() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Notification, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.n
	}
	return out
}

// Get looks up a notification by id.
func (l *List) Get(id string) (Notification, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.index[id]
	if !ok {
		return Notification{}, false
	}
	return e.n, true
}

// Pending counts timers that are still scheduled.
func (l *List) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, e := range l.entries {
		if e.timer != nil {
			n++
		}
	}
	return n
}

// Closed reports whether Close has been called.
func (l *List) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Close tears the list down, cancelling every pending timer. Safe to call more than once.
// Timers are stopped after the lock is released so a firing callback never waits on it.
func (l *List) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true

	var timers []clock.Timer
	for _, e := range l.entries {
		if e.timer != nil {
			timers = append(timers, e.timer)
			e.timer = nil
		}
	}
	total := len(l.entries)
	l.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
	log.Debug().Int("cancelled", len(timers)).Int("total", total).Msg("alert list closed")
}
