// Package logging provides logging utilities for checkenv.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted status lines for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("using java from PATH", "path", path)
//	logging.Debug("java probe failed", "path", javaPath, "error", err)
//
// # User Output
//
//	logging.UserWarning("ignoring config %s: %v", path, err)
//	logging.UserError("%v", err)
//
// Both user functions write to stderr; stdout is reserved for the report.
// The status marker (⚠ or ✗) is coloured with lipgloss when stderr is a
// terminal and left plain otherwise.
package logging
