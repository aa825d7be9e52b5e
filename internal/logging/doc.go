// Package logging provides structured logging for duskytune.
//
// This package wraps zap with convenience functions used throughout the
// editor. Logging is silent by default: the TUI owns the terminal, and a
// stray log line written mid-frame would tear the display. Setting the
// DUSKYTUNE_LOG_LEVEL environment variable routes structured logs to a file
// under the XDG state directory instead.
//
// # Log Levels
//
//   - Debug: parse results, decoded input sequences, write payloads
//   - Info: panel startup, batch resets, hook invocations
//   - Warn: recoverable write failures, hook failures
//   - Error: setup failures reported before the UI starts
//
// # Usage
//
//	logging.InitializeFromEnv()
//	defer logging.Sync()
//
//	logging.Info("panel started",
//	    zap.String("panel", "hyprland"),
//	    zap.String("config", path),
//	)
package logging
