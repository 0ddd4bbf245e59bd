// Package main hosts the cnpjcheck CLI entrypoint and command graph.
//
// The Cobra-based command tree wires spreadsheet loading, registry lookups,
// report rendering, and configuration scaffolding. It centralizes config
// resolution and logging setup so subcommands can focus on user experience.
//
// Keep this package lean: validation behavior belongs in the internal
// packages; commands only translate flags into calls and results into
// terminal output.
package main
