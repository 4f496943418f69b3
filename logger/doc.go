// Package logger provides structured logging for prockit
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// The process launcher takes its logger as an explicit dependency; the
// registry only supplies the default.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("process")
//	log.Info("command finished", logger.Fields(logger.FieldExitCode, 0))
package logger
