// Package logging provides structured logging utilities for the cookbook tools.
//
// # Overview
//
// This package wraps the standard library slog package with consistent defaults:
// JSON records on stderr, a module and version attribute on every record, and
// source locations when running at debug level. Standard output is reserved for
// converted recipe data, so logs never go there.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-record parser decisions, with source location
//   - INFO: conversions, server lifecycle (default)
//   - WARN/WARNING: recoverable problems such as a failed catalog reload
//   - ERROR: failures that abort a command
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cookbook", version)
//	    slog.Info("converting", "input", path)
//	}
//
// Explicit level, as the CLI does after parsing --log-level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cookbook", version, "debug")
//
// # Environment Configuration
//
// LOG_LEVEL controls verbosity when no explicit level is passed:
//
//	LOG_LEVEL=debug cookbook convert --input cookbook.md
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "conversion complete",
//	    "module": "cookbook",
//	    "version": "v1.0.0",
//	    "recipes": 212
//	}
package logging
