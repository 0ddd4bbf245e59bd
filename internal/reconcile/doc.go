// Package reconcile cross-references registry records against spreadsheet
// cell contents and aggregates the per-field verdicts into the final report.
//
// Matching is deliberately permissive: a registry value "matches" when it
// occurs as a substring of any cell in the whole table, case-insensitively
// for names and municipalities. Tightening this to exact or token-normalized
// comparison would change user-visible results, so don't.
package reconcile
