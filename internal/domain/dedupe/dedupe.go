// Package dedupe defines the interface for distinct-key tracking.
package dedupe

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
)

// keySeparator joins key parts. Unit separator cannot appear in source cells,
// so composite keys never collide.
const keySeparator = "\x1f"

// Tracker records seen composite keys so a contributor counts at most once.
// The participation trend uses it to count an athlete once per (year, id, sex)
// regardless of how many events they entered.
type Tracker interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord removes a key from the seen set.
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// Key builds a composite key from its parts.
func Key(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

// setTracker implements Tracker with a plain map. Unlike a bounded cache,
// nothing is ever evicted: dropping a key mid-pass would double-count a
// participant.
type setTracker struct {
	mu   sync.RWMutex
	seen map[string]struct{}
	size atomic.Int64
}

// NewSetTracker creates a new in-memory tracker with configuration options.
func NewSetTracker(opts ...Option) Tracker {
	t := &setTracker{}

	cfg := settings{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.initialCapacity > 0 {
		t.seen = make(map[string]struct{}, cfg.initialCapacity)
	} else {
		t.seen = make(map[string]struct{})
	}

	return t
}

// SeenAndRecord atomically checks if key was seen and records it if not.
func (t *setTracker) SeenAndRecord(_ context.Context, key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.seen[key]; exists {
		return true
	}
	t.seen[key] = struct{}{}
	t.size.Add(1)
	return false
}

// Unrecord removes a key from the seen set.
func (t *setTracker) Unrecord(_ context.Context, key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.seen[key]; exists {
		delete(t.seen, key)
		t.size.Add(-1)
	}
}

// Size returns the current number of recorded keys.
func (t *setTracker) Size() int64 {
	return t.size.Load()
}
