// Package models defines the value types passed between the playlist source, the extractor and the reporters.
//
// Input:
//   - [TrackRecord] : read-only accessors for one rendered playlist row
//   - [Row] : static [TrackRecord] used for JSON row dumps and fixtures
//
// Output:
//   - [ResolvedEntry] : one "Title - Artist" pair per input row, in row order
//   - [Diagnostic] : a row whose artist could not be resolved with confidence, tagged with a [Reason]
//
// All values are transient and built within a single extraction pass.
package models
