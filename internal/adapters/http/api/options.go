package api

// Default paging bounds for the medal leaderboard endpoint.
const (
	defaultLeaderboardLimit = 10
	defaultMaxLimit         = 100
)

type settings struct {
	defaultLimit int
	maxLimit     int
}

// Option applies a configuration option to the Server.
type Option func(*settings)

func newSettings(opts ...Option) settings {
	cfg := settings{
		defaultLimit: defaultLeaderboardLimit,
		maxLimit:     defaultMaxLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDefaultLimit sets the leaderboard size used when no limit is given.
func WithDefaultLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.defaultLimit = n
		}
	}
}

// WithMaxLimit caps the limit a client may request.
func WithMaxLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}
