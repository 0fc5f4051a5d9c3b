package gallery

import "errors"

// Error taxonomy confined to the core (spec.md §7). The layout engine itself
// never returns these — invalid geometry is skipped and logged, not
// surfaced as an error. They exist for callers (the Mutator, the Scroll
// Controller) that need to distinguish failure modes.
var (
	// ErrNoContainer is returned when an operation that requires a known
	// container size is invoked before one has been observed.
	ErrNoContainer = errors.New("gallery: container has not been measured yet")
)
