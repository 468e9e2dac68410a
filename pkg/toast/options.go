package toast

import (
	"log/slog"
	"time"
)

// Defaults for the two-stage dismissal.
const (
	DefaultVisibleFor = 3000 * time.Millisecond
	DefaultFadeFor    = 400 * time.Millisecond
)

// Option configures a Notifier.
type Option func(*Notifier)

// WithClock replaces the wall clock, typically with toasttest.ManualClock.
func WithClock(c Clock) Option {
	return func(n *Notifier) {
		if c != nil {
			n.clock = c
		}
	}
}

// WithLogger sets the logger used for failures in the deferred stages.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.log = l
		}
	}
}

// WithVisibleFor sets how long a toast stays fully opaque.
func WithVisibleFor(d time.Duration) Option {
	if d <= 0 {
		panic("WithVisibleFor: duration must be > 0")
	}
	return func(n *Notifier) { n.visibleFor = d }
}

// WithFadeFor sets the length of the fade-out transition.
func WithFadeFor(d time.Duration) Option {
	if d <= 0 {
		panic("WithFadeFor: duration must be > 0")
	}
	return func(n *Notifier) { n.fadeFor = d }
}

// WithStyle overrides DefaultStyle.
func WithStyle(s Style) Option {
	return func(n *Notifier) { n.style = s }
}

// WithIDGenerator overrides how element ids are produced.
func WithIDGenerator(fn func() string) Option {
	return func(n *Notifier) {
		if fn != nil {
			n.newID = fn
		}
	}
}

// WithRecorder reports toast activity to r, typically a *metrics.Collector.
func WithRecorder(r Recorder) Option {
	return func(n *Notifier) {
		if r != nil {
			n.recorder = r
		}
	}
}
