// Package common provides shared constants, errors, utilities and the
// application logger used throughout Event Table.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application metadata, file names, layout metrics and intervals
//   - Errors: sentinel errors checked with errors.Is
//   - Interfaces: the Logger abstraction consumed by background workers
//   - Logger: levelled logging to stdout and a rotated log file
//   - Utils: config directory lookup and small numeric helpers
//
// # Usage
//
//	common.LogInfo("Starting %s", common.AppName)
//
//	if errors.Is(err, common.ErrIconDecode) {
//	    // Startup cannot continue without a tray icon
//	}
package common
