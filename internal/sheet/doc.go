// Package sheet loads spreadsheet files into an in-memory table of text
// cells for validation.
//
// The validator never parses file formats itself; it consumes the Table this
// package produces. Loaders mirror the presentation conventions of the
// original workbook layout: the first column is dropped when others exist, and
// missing cells are blank-filled so every row has the same width. Cell values
// are kept verbatim; matching is substring-based downstream, so no trimming
// or normalization happens here.
package sheet
