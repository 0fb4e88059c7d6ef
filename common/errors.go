// Package common provides shared constants, types, and utilities
// used across the Event Table application.
package common

import "errors"

// Sentinel errors.
// These can be checked with errors.Is() for proper error handling.
var (
	// Startup errors.
	ErrIconDecode = errors.New("failed to decode tray icon")
	ErrTrayMenu   = errors.New("failed to build tray menu")

	// Configuration errors.
	ErrConfigLoad    = errors.New("failed to load configuration")
	ErrConfigSave    = errors.New("failed to save configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Replay errors.
	ErrReplayRead = errors.New("failed to read replay input")

	// Tray bridge errors.
	ErrTrayQueueFull = errors.New("tray event queue is full")
	ErrUnknownItem   = errors.New("unknown tray menu item")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
