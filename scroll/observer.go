package scroll

import (
	"context"

	"github.com/hey-adora/artbounty-sub000/gallery"
)

// ResizeBridge adapts a container-resize observation into on_resize calls,
// deduplicating identical consecutive sizes (spec.md §4.5 permits this; the
// original's toolbox.rs carries a general "debounce identical consecutive
// values" helper this specializes, per SPEC_FULL.md §C.3).
type ResizeBridge struct {
	Controller *Controller
	RowHeight  float64

	lastW, lastH float64
	hasLast      bool
}

// Notify is the callback a real ResizeObserver invokes with the container's
// new content box size. It takes Controller.mu for the dedup check and the
// State mutation: OnResize rewrites every item's geometry and reassigns
// ContainerW/ContainerH in place, the same State.Items backing array a
// concurrent TryTrigger goroutine may be splicing/evicting inside
// applyBatch (scroll/controller.go), so both must serialize on the same
// lock.
func (b *ResizeBridge) Notify(w, h float64) {
	b.Controller.mu.Lock()
	if b.hasLast && w == b.lastW && h == b.lastH {
		b.Controller.mu.Unlock()
		return
	}
	b.hasLast = true
	b.lastW, b.lastH = w, h
	rh := b.RowHeight
	if rh <= 0 {
		rh = b.Controller.State.RowHeight
	}
	b.Controller.State.OnResize(w, h, rh)
	b.Controller.mu.Unlock()

	if b.Controller.Invalidator != nil {
		b.Controller.Invalidator()
	}
}

// IntersectionBridge adapts an element-intersection observation into a
// secondary edge trigger. It fires only on the "activation edge": an item
// that was previously outside the viewport and has just become visible
// (spec.md §4.5). Being visible on mount never fires.
type IntersectionBridge struct {
	Controller *Controller

	wasVisible map[int]bool
}

// Notify reports that the item at index (out of total currently-loaded
// items) has changed intersection state. N = total/3 items from either edge
// count as within the activation zone.
func (b *IntersectionBridge) Notify(ctx context.Context, index, total int, visible bool) {
	if b.wasVisible == nil {
		b.wasVisible = make(map[int]bool)
	}
	was, seen := b.wasVisible[index]
	b.wasVisible[index] = visible
	if !visible || !seen || was {
		// Not an activation edge: either still/newly invisible, visible on
		// its first report (visible on mount), or it was already visible
		// (no transition occurred).
		return
	}
	if total <= 0 {
		return
	}
	n := total / 3
	switch {
	case index < n:
		b.Controller.TryTrigger(ctx, gallery.Up)
	case index >= total-n:
		b.Controller.TryTrigger(ctx, gallery.Down)
	}
}

// MutationBridge delivers the pending one-shot scroll restoration the first
// time a child-list mutation is observed after first paint (spec.md §4.5,
// §4.3's "Pending scroll delivery").
type MutationBridge struct {
	Controller *Controller
}

// Notify is the callback a real MutationObserver invokes for a child-list
// mutation batch.
func (b *MutationBridge) Notify() {
	b.Controller.DeliverPendingScroll()
}
