// Package config loads, normalizes, and validates cnpjcheck configuration.
//
// It supplies repository defaults, expands tilde paths, and reads TOML files
// from an explicit --config flag, ~/.config/cnpjcheck/config.toml, or a
// project-local cnpjcheck.toml, in that order. Every knob is optional: the
// tool runs against the public registry with defaults alone.
//
// The validation core never reads configuration; these values are wiring for
// the CLI shell.
package config
