// Package gallery implements the virtualized, bidirectionally-scrolling
// justified image gallery: a pure layout engine coupled to the mutation
// operations that keep a growing list of variable-aspect images packed into
// flush rows while preserving the viewer's scroll position.
package gallery

import "fmt"

// Ref is an opaque payload that lets a renderer derive a source URL for an
// Item. The layout engine never interprets it.
type Ref struct {
	Hash string
	Ext  string
}

// URL renders the renderer-side convention documented in spec.md §6:
// "/assets/{hash}.{ext}".
func (r Ref) URL() string {
	return fmt.Sprintf("/assets/%s.%s", r.Hash, r.Ext)
}

// Resizable is the interface the layout engine operates over. Production
// code uses Item directly; tests may supply lighter-weight implementations
// with deterministic identifiers.
type Resizable interface {
	ID() string
	// Dimensions returns the original pixel width and height of the source
	// image.
	Dimensions() (width, height uint32)
	// Geometry returns the computed display geometry.
	Geometry() (vw, vh, x, y float64)
	// SetGeometry stores newly computed display geometry.
	SetGeometry(vw, vh, x, y float64)
}

// Item is the concrete image record the gallery manages: identity, original
// geometry, computed display geometry, and the ordering key used for
// paging (spec.md §3).
type Item struct {
	ItemID string
	Width  uint32
	Height uint32

	VW, VH float64
	X, Y   float64

	// CreatedAt is a monotonic time cursor, nanoseconds since epoch, used
	// for paging. Items are kept sorted strictly descending by this field.
	CreatedAt uint64

	Ref Ref
}

var _ Resizable = (*Item)(nil)

func (i *Item) ID() string { return i.ItemID }

func (i *Item) Dimensions() (width, height uint32) { return i.Width, i.Height }

func (i *Item) Geometry() (vw, vh, x, y float64) { return i.VW, i.VH, i.X, i.Y }

func (i *Item) SetGeometry(vw, vh, x, y float64) {
	i.VW, i.VH, i.X, i.Y = vw, vh, x, y
}

// aspectRatio returns width/height, and whether it is finite (spec.md §4.1
// edge-case policy: zero width or height yields a non-finite ratio and the
// item must be skipped).
func aspectRatio(r Resizable) (ratio float64, ok bool) {
	w, h := r.Dimensions()
	if w == 0 || h == 0 {
		return 0, false
	}
	return float64(w) / float64(h), true
}

// scaledWidth returns the width an item would have if first scaled so its
// height equals rowHeight: w - (h - rowHeight) * w / h. This is the
// algebraic equivalent of scaling w by (rowHeight/h), precomputed once per
// caller per spec.md §4.1.
func scaledWidth(r Resizable, rowHeight float64) (scaled, ratio float64, ok bool) {
	ratio, ok = aspectRatio(r)
	if !ok {
		return 0, 0, false
	}
	w, h := r.Dimensions()
	scaled = float64(w) - (float64(h)-rowHeight)*float64(w)/float64(h)
	return scaled, ratio, true
}
