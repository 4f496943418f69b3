// Package config provides configuration loading and validation for tools
// built on prockit.
//
// It uses Viper to load configuration from config.yml files and environment
// variables, with .env files loaded through godotenv. The root Config embeds
// the logging and process sections so a tool can load everything with a
// single call:
//
//	var cfg config.Config
//	if err := config.Load("my-tool", &cfg); err != nil {
//	    log.Fatal(err)
//	}
//	cfg.ApplyDefaults()
//
// Environment variables override file values using underscore-separated
// paths (e.g., PROCESS_GRACE_PERIOD, LOGGING_LEVEL).
package config
