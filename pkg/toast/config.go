package toast

import "time"

// Config holds the environment-tunable notifier settings.
type Config struct {
	VisibleFor time.Duration `env:"TOAST_VISIBLE_DURATION" envDefault:"3s"`
	FadeFor    time.Duration `env:"TOAST_FADE_DURATION" envDefault:"400ms"`
	// BufferSize bounds the patches queued per connected page.
	BufferSize int `env:"TOAST_BUFFER_SIZE" envDefault:"64"`
}

// NewFromConfig creates a Notifier from cfg. Zero durations keep the defaults.
func NewFromConfig(cfg Config, display Display, opts ...Option) *Notifier {
	configOpts := make([]Option, 0, 2+len(opts))
	if cfg.VisibleFor > 0 {
		configOpts = append(configOpts, WithVisibleFor(cfg.VisibleFor))
	}
	if cfg.FadeFor > 0 {
		configOpts = append(configOpts, WithFadeFor(cfg.FadeFor))
	}
	return New(display, append(configOpts, opts...)...)
}
