package alert

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"k8s.io/utils/clock"
)

// DefaultSessionTTL is how long an untouched visitor list is kept.
const DefaultSessionTTL = 30 * time.Minute

type tracked struct {
	list     *List
	lastSeen time.Time
}

// Registry owns one List per visitor session and tears down idle ones.
type Registry struct {
	clock clock.WithTickerAndDelayedExecution
	ttl   time.Duration
	opts  []Option

	mu     sync.Mutex
	lists  map[string]*tracked
	closed bool
}

// NewRegistry creates a registry. Lists it creates are built with opts.
func NewRegistry(clk clock.WithTickerAndDelayedExecution, ttl time.Duration, opts ...Option) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{
		clock: clk,
		ttl:   ttl,
		opts:  opts,
		lists: make(map[string]*tracked),
	}
}

// Get returns the list for sessionID, creating it on first use, and marks it as seen.
func (r *Registry) Get(sessionID string) (*List, error) {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}

	t, ok := r.lists[sessionID]
	if !ok {
		t = &tracked{list: NewList(r.clock, r.opts...)}
		r.lists[sessionID] = t
	}
	t.lastSeen = now
	return t.list, nil
}

// Peek returns the list for sessionID without creating or touching it.
func (r *Registry) Peek(sessionID string) (*List, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.lists[sessionID]
	if !ok {
		return nil, false
	}
	return t.list, true
}

// Len is the number of sessions currently tracked.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lists)
}

// Sweep closes and forgets every list idle for longer than the TTL.
// It returns the number of lists removed.
func (r *Registry) Sweep() int {
	now := r.clock.Now()

	r.mu.Lock()
	var idle []*List
	for id, t := range r.lists {
		if now.Sub(t.lastSeen) > r.ttl {
			idle = append(idle, t.list)
			delete(r.lists, id)
		}
	}
	r.mu.Unlock()

	for _, l := range idle {
		l.Close()
	}
	if len(idle) > 0 {
		log.Debug().Int("removed", len(idle)).Msg("swept idle alert lists")
	}
	return len(idle)
}

// Run sweeps on a ticker until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	interval := max(r.ttl/2, time.Second)

	ticker := r.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			r.Sweep()
		}
	}
}

// Close tears down every list. Later calls to Get fail with ErrClosed.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	lists := r.lists
	r.lists = make(map[string]*tracked)
	r.mu.Unlock()

	for _, t := range lists {
		t.list.Close()
	}
}
