package repository

import (
	"context"
	"sync"
	"time"

	"github.com/podiumlab/podium/pkg/metrics"
)

// MemStore keeps the current snapshot in memory behind a read/write lock.
// Readers see either the previous snapshot or the new one, never a mix.
type MemStore struct {
	mu   sync.RWMutex
	snap *Snapshot

	clock func() time.Time
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory snapshot store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Replace swaps in a new snapshot, stamping BuiltAt when unset.
func (s *MemStore) Replace(_ context.Context, snap *Snapshot) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if snap.BuiltAt.IsZero() {
		snap.BuiltAt = s.clock()
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	metrics.RecordSnapshotSwap(snap.BuiltAt)
	return nil
}

// Snapshot returns the current snapshot.
func (s *MemStore) Snapshot(_ context.Context) (*Snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap == nil {
		return nil, ErrEmptySnapshot
	}
	return snap, nil
}
