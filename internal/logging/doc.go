// Package logging constructs the slog loggers used across the CLI and keeps
// attribute helpers in one place so call sites stay terse.
package logging
