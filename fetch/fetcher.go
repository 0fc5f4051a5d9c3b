// Package fetch declares the Fetcher Adapter the gallery core consumes for
// paging (spec.md §4.4): four time-cursor-keyed operations the Scroll
// Controller invokes to load older or newer items. The core is agnostic to
// the transport; see the store and httpapi packages for concrete
// implementations, and Memory for an in-process test double.
package fetch

import (
	"context"

	"github.com/hey-adora/artbounty-sub000/gallery"
)

// Batch is the result of a single fetch. An empty batch is not an error —
// it is recorded by the caller as a terminal state for that direction
// (spec.md §4.4, §7).
type Batch struct {
	Items []*gallery.Item
}

// Fetcher is the interface the gallery core depends on. Implementations
// must apply their own transport-level timeout and surface errors as a
// returned error; the Scroll Controller logs and drops them (spec.md §5,
// §7).
type Fetcher interface {
	// OlderOrEqual returns up to n items with CreatedAt <= t, ordered
	// descending. Used for the initial load.
	OlderOrEqual(ctx context.Context, t uint64, n int) (Batch, error)
	// Older returns up to n items with CreatedAt < t, ordered descending.
	// Used for append_bottom.
	Older(ctx context.Context, t uint64, n int) (Batch, error)
	// NewerOrEqual returns up to n items with CreatedAt >= t, fetched
	// ascending and reversed to descending order. Used for the initial
	// backward load.
	NewerOrEqual(ctx context.Context, t uint64, n int) (Batch, error)
	// Newer returns up to n items with CreatedAt > t, fetched ascending
	// and reversed to descending order. Used for prepend_top.
	Newer(ctx context.Context, t uint64, n int) (Batch, error)
}

// Reverse reverses a slice of items in place and returns it, the operation
// NewerOrEqual/Newer implementations apply after an ascending query
// (spec.md §4.4).
func Reverse(items []*gallery.Item) []*gallery.Item {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}
