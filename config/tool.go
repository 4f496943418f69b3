package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/prockit/logger"
	"github.com/kbukum/prockit/process"
	"github.com/kbukum/prockit/util"
	"github.com/kbukum/prockit/version"
)

// Config is the root configuration for a tool built on prockit.
// Projects extend it by embedding it in their own config structs.
//
// Example:
//
//	type AgentConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    Workdir string `yaml:"workdir" mapstructure:"workdir"`
//	}
type Config struct {
	Name        string         `yaml:"name" mapstructure:"name"`
	Environment string         `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Version     string         `yaml:"version" mapstructure:"version"`
	Debug       bool           `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config  `yaml:"logging" mapstructure:"logging"`
	Process     process.Config `yaml:"process" mapstructure:"process"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// GetConfig returns the base Config. When embedded in a larger config
// struct, this method is promoted so the embedding struct automatically
// exposes the shared fields.
func (c *Config) GetConfig() *Config {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call c.Config.ApplyDefaults() first.
func (c *Config) ApplyDefaults() {
	c.Environment = util.Coalesce(c.Environment, "development")
	c.Version = util.Coalesce(c.Version, version.GetShortVersion())
	if c.Environment == "development" {
		c.Debug = true
	}
	// Propagate the tool name into logging so Init() uses the right tag.
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Process.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call c.Config.Validate() first.
func (c *Config) Validate() error {
	if err := util.ValidateNonEmpty("config.name", c.Name); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
