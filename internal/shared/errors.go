package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
	ErrInvalidSelector = fmt.Errorf("invalid CSS selector")

	// Input errors
	ErrReadInput       = fmt.Errorf("failed to read input")
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Output errors
	ErrWriteOutput = fmt.Errorf("failed to write output")
	ErrClipboard   = fmt.Errorf("clipboard unavailable")

	// Extraction outcomes surfaced as errors only in strict mode
	ErrAmbiguousTracks = fmt.Errorf("artist could not be determined for some tracks")
)
