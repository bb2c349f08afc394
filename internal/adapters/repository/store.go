// Package repository defines the derived-table snapshot store and errors.
package repository

import (
	"context"
	"time"

	"github.com/podiumlab/podium/internal/domain/types"
)

// Snapshot holds all derived tables built from one load of the sources.
// A snapshot is immutable once stored; refreshes replace it wholesale.
type Snapshot struct {
	Participation []types.ParticipationPoint
	Medals        []types.MedalRow
	Ages          []types.AgeShare
	Records       []types.RecordSpan
	BuiltAt       time.Time
}

// Store provides read/replace access to the current snapshot.
type Store interface {
	// Replace swaps in a freshly built snapshot.
	Replace(ctx context.Context, snap *Snapshot) error

	// Snapshot returns the current snapshot.
	// Returns ErrEmptySnapshot before the first Replace.
	Snapshot(ctx context.Context) (*Snapshot, error)
}
