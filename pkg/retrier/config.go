package retrier

import "time"

// Config carries retry settings loadable from the environment with
// pkg/config. Zero values fall back to the package defaults.
type Config struct {
	MaxAttempts int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
	Initial     time.Duration `env:"RETRY_INITIAL_INTERVAL" envDefault:"1s"`
	Max         time.Duration `env:"RETRY_MAX_INTERVAL" envDefault:"30s"`
	Multiplier  float64       `env:"RETRY_MULTIPLIER" envDefault:"2"`
	Jitter      float64       `env:"RETRY_JITTER" envDefault:"0.1"`
}

// Options converts the config into Do options.
func (c Config) Options() []Option {
	return []Option{
		WithMaxAttempts(c.MaxAttempts),
		WithBackoff(ExponentialBackoff{
			Initial:    c.Initial,
			Max:        c.Max,
			Multiplier: c.Multiplier,
			Jitter:     c.Jitter,
		}),
	}
}
