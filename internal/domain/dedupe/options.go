// Package dedupe defines the interface for distinct-key tracking.
package dedupe

// settings collects tracker construction parameters.
type settings struct {
	initialCapacity int
}

// Option applies a configuration option to the tracker.
type Option func(*settings)

// WithInitialCapacity pre-sizes the seen set. Useful when the caller knows
// the input row count up front.
func WithInitialCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.initialCapacity = n
		}
	}
}
