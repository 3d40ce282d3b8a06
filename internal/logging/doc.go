// Package logging provides the structured logger used across sumbench. The
// Logger interface is backed by zerolog: NewConsoleLogger for the CLI's
// human-readable diagnostics and NewLogger for JSON output in tools.
package logging
