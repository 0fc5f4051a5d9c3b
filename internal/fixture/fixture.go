// Package fixture generates demo/test gallery items with deterministic
// IDs, dimensions and timestamps. It
// backs the CLI's `seed` command and any test that wants a large item set
// without hand-writing one, grounded on the teacher's
// example/kitchen/row-tracker.go (NewExampleData/newRow).
package fixture

import (
	"fmt"
	"hash/fnv"

	lorem "github.com/drhodes/golorem"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/hey-adora/artbounty-sub000/gallery"
)

// Dimensions cycles through a handful of realistic aspect ratios so a
// generated gallery exercises the row-packing logic the way a real photo
// stream would: a mix of landscape, portrait, and square images.
var Dimensions = [][2]uint32{
	{1600, 900},  // landscape
	{900, 1600},  // portrait
	{1200, 1200}, // square
	{2000, 1125}, // wide landscape
	{1080, 1350}, // tall portrait
}

// placeholderColor derives a deterministic hex color for id, standing in
// for a thumbnail's dominant color without decoding any real image (image
// decode/re-encode is a non-core collaborator per spec.md §1).
func placeholderColor(id string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	hue := float64(h.Sum32()%360) / 360 * 360
	return colorful.Hsv(hue, 0.55, 0.85).Hex()
}

// Items generates n deterministic items, newest first, spaced one second
// apart starting at startNanos and decreasing. Captions/hashes use
// human-looking placeholder text from golorem rather than literal
// "item-0001" identifiers, the way example/kitchen's row generator does.
// The golorem word in each Ref.Hash is drawn at random, so hashes differ
// between calls.
func Items(n int, startNanos uint64) []*gallery.Item {
	out := make([]*gallery.Item, 0, n)
	const second = uint64(1_000_000_000)
	for i := 0; i < n; i++ {
		dims := Dimensions[i%len(Dimensions)]
		createdAt := startNanos - uint64(i)*second
		hash := fmt.Sprintf("%08x-%s", createdAt, lorem.Word(6, 10))
		out = append(out, &gallery.Item{
			ItemID:    fmt.Sprintf("item-%06d", i),
			Width:     dims[0],
			Height:    dims[1],
			CreatedAt: createdAt,
			Ref: gallery.Ref{
				Hash: hash,
				Ext:  "jpg",
			},
		})
	}
	return out
}

// Caption returns a human-looking placeholder caption for an item,
// independent of its stored Ref, for demo UIs that want descriptive text.
func Caption() string {
	return lorem.Sentence(3, 12)
}

// PlaceholderColor exposes placeholderColor for callers that want to
// persist a dominant-color hint alongside an item.
func PlaceholderColor(id string) string {
	return placeholderColor(id)
}
