// Package logging provides structured logging utilities for the menu service.
//
// # Overview
//
// This package wraps the standard library slog package with service defaults
// so every component logs the same way: JSON to stderr, module and version
// attributes on every record, and source location at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("menud", "v1.0.0")
//	    slog.Info("connected to store", "backend", "mongo")
//	}
//
// Setting an explicit log level (used by menuctl's --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("menuctl", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug menud
//
// If LOG_LEVEL is not set, defaults to INFO level.
package logging
