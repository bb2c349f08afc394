package ranking

// Option applies a configuration option to the Labeler.
type Option func(*Labeler)

// WithOverrides sets the label override mapping (composed label -> display
// label). The map is copied to avoid external modifications.
func WithOverrides(overrides map[string]string) Option {
	return func(l *Labeler) {
		l.overrides = make(map[string]string, len(overrides))
		for raw, display := range overrides {
			if raw != "" && display != "" {
				l.overrides[raw] = display
			}
		}
	}
}
