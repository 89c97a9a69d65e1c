// Package logger provides structured logging for rangekit tools using zerolog.
//
// It supports JSON and console output, log level configuration and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("steps")
//	log.Debug("parsed step", logger.Fields("name", "take", "arg", 3))
package logger
