package segment

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Segment call. The zero value of every Option field
// is safe to leave unset; Segment works silently without any options.
type Option func(*settings)

type settings struct {
	logger *logrus.Logger
}

// WithLogger wires a *logrus.Logger that Segment uses to report, at debug
// level, the raster dimensions and seed-set sizes before graph
// construction and the max-flow value after solving. It does not log
// per-augmentation progress or the final object/background pixel counts.
// Passing nil, or omitting WithLogger entirely,
// leaves Segment silent: it falls back to a logger configured to discard
// its output, so the hot path never branches on a nil check.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{logger: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
