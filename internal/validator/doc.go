// Package validator orchestrates a validation run: extract CNPJs from the
// loaded table, look each unique one up against the registry, reconcile the
// results against the table, and aggregate the report.
//
// Lookups run strictly sequentially, one attempt each. Progress is surfaced
// through an explicit callback so presentation (progress bar, log lines,
// nothing) stays out of the core loop.
package validator
