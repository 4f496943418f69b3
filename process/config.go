package process

import "time"

// Config holds launcher defaults. Zero values fall back to the documented
// defaults, so an empty Config is valid.
type Config struct {
	// GracePeriod is how long a canceled child gets between SIGTERM and
	// SIGKILL. Defaults to 5 seconds.
	GracePeriod time.Duration `yaml:"grace_period,omitempty" mapstructure:"grace_period" validate:"min=0"`
	// Timeout is the default deadline applied to every launch. Zero means
	// no timeout; callers needing one per invocation race the context
	// externally.
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout" validate:"min=0"`
}

// ApplyDefaults applies default values to launcher configuration.
func (c *Config) ApplyDefaults() {
	if c.GracePeriod == 0 {
		c.GracePeriod = 5 * time.Second
	}
}
