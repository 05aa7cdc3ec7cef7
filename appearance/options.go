package appearance

import (
	"log/slog"
	"time"
)

// DefaultInterval is the time between two OS appearance queries.
const DefaultInterval = 200 * time.Millisecond

type options struct {
	detector Detector
	interval time.Duration
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		detector: SystemDetector{},
		interval: DefaultInterval,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Option configures a Tracker.
type Option func(*options)

// WithDetector replaces the OS query.
func WithDetector(d Detector) Option {
	return func(o *options) {
		if d != nil {
			o.detector = d
		}
	}
}

// WithInterval sets the polling interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithLogger sets the logger for diagnostics. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
