package scaling

import (
	"log/slog"
	"time"
)

const (
	// DefaultInterval is the time between two DPI checks.
	DefaultInterval = 100 * time.Millisecond

	// DefaultPause delays the next check after a DPI change, giving the
	// window time to settle on the new monitor.
	DefaultPause = 1500 * time.Millisecond

	// MinMultiplier is the smallest user scaling multiplier.
	MinMultiplier = 0.4
)

type options struct {
	prober   Prober
	interval time.Duration
	pause    time.Duration
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		prober:   SystemProber{},
		interval: DefaultInterval,
		pause:    DefaultPause,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Option configures a Tracker.
type Option func(*options)

// WithProber replaces the OS DPI query.
func WithProber(p Prober) Option {
	return func(o *options) {
		if p != nil {
			o.prober = p
		}
	}
}

// WithInterval sets the time between DPI checks. Non-positive values are
// ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithPause sets the delay after a detected DPI change. Non-positive
// values are ignored.
func WithPause(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pause = d
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
