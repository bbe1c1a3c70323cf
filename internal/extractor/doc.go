// Package extractor resolves playlist rows into "Title - Artist" entries.
//
// # Resolution
//
// Each row is handled on its own, in order:
//
//  1. Title : the row title, or "Unknown Title {n}" when absent
//  2. Linked artists : trimmed, non-empty artist link texts joined with ", "
//  3. Direct text : only when no linked artist exists; the first "•" segment of the
//     row's combined text, rejected when it equals the title, looks like a year,
//     or the text marks an auto-generated topic channel
//  4. Fallback : "Unknown Artist {n}"
//
// Rows are never dropped. Every uncertain row yields one [models.Diagnostic].
//
// # Status
//
// An empty row list is not an error. [Extract] reports it through [StatusNoRows].
package extractor
