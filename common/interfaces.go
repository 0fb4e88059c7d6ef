// Package common provides shared constants, types, and utilities
// used across the Event Table application.
package common

// Logger defines the interface for levelled logging.
// AppLogger implements it; tests substitute a recording logger.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}

var _ Logger = (*AppLogger)(nil)
