package gallery

import "log"

// rowBoundaries returns the ascending indices at which a new row begins,
// inferred from y discontinuities in already-laid-out items (rows share a
// single y per I5), plus len(items) as a trailing sentinel. An empty slice
// yields []int{0}.
func rowBoundaries(items []Resizable) []int {
	if len(items) == 0 {
		return []int{0}
	}
	bounds := []int{0}
	prevY := yOf(items[0])
	for i := 1; i < len(items); i++ {
		if y := yOf(items[i]); y != prevY {
			bounds = append(bounds, i)
			prevY = y
		}
	}
	bounds = append(bounds, len(items))
	return bounds
}

// evictFromTop finds the smallest prefix length k such that items[k:]
// fits within virtualH, evicting whole rows at a time (spec.md §4.2.1
// step 2, §4.2.5).
func evictFromTop(items []Resizable, virtualH float64) int {
	bounds := rowBoundaries(items)
	for _, k := range bounds {
		if k == len(items) {
			return k
		}
		if totalHeight(items[k:]) <= virtualH {
			return k
		}
	}
	return len(items)
}

// evictFromBottom finds the largest prefix length e (i.e. the smallest
// evicted suffix) such that items[:e] fits within virtualH, evicting whole
// rows at a time (spec.md §4.2.2, §4.2.5).
func evictFromBottom(items []Resizable, virtualH float64) int {
	bounds := rowBoundaries(items)
	for i := len(bounds) - 1; i >= 0; i-- {
		e := bounds[i]
		if e == 0 {
			return 0
		}
		if totalHeight(items[:e]) <= virtualH {
			return e
		}
	}
	return 0
}

// filterValid drops items with a zero dimension (non-finite aspect ratio),
// logging each one (spec.md §4.1 edge-case policy, §7).
func filterValid(items []Resizable) []Resizable {
	out := make([]Resizable, 0, len(items))
	for _, it := range items {
		if _, ok := aspectRatio(it); !ok {
			log.Printf("gallery: dropping invalid item %q (zero width or height)", it.ID())
			continue
		}
		out = append(out, it)
	}
	return out
}

// VirtualHeight returns the eviction threshold container_h * K described in
// spec.md §4.2.5, using the State's configured K (or the package default).
func (s *State) VirtualHeight() float64 {
	return s.ContainerH * float64(s.evictionK())
}

// AppendBottom extends the item sequence with newItems, first evicting
// whole rows from the top of the existing items until they fit within the
// virtual viewport height (newItems are not counted), re-packing
// only the affected tail, and returning the scroll-compensation delta
// (spec.md §4.2.1).
func (s *State) AppendBottom(newItems []Resizable) float64 {
	newItems = filterValid(newItems)
	items := s.Items

	h0 := totalHeight(items)
	k := evictFromTop(items, s.VirtualHeight())
	items = items[k:]
	normalizeY(items)
	h1 := totalHeight(items)
	deltaY := h1 - h0

	newItems = dedupe(items, newItems)

	offset := 0
	startY := 0.0
	if len(items) > 0 {
		bounds := rowBoundaries(items)
		offset = bounds[len(bounds)-2]
		startY = yOf(items[offset])
	}

	items = append(items, newItems...)
	rows := packForward(items, offset, s.ContainerW, s.RowHeight)
	applyForward(items, rows, s.ContainerW, startY)

	s.Items = items
	if len(items) > 0 {
		s.LastCursor = createdAtOf(items[len(items)-1])
		s.LastDirection = Down
	}
	return deltaY
}

// PrependTop splices newItems at the head of the sequence, evicting from
// the bottom if necessary, re-packing in reverse from the row immediately
// following the newly inserted items, normalizing so the new head has
// y == 0, and returning the scroll-compensation delta (spec.md §4.2.2).
func (s *State) PrependTop(newItems []Resizable) float64 {
	newItems = filterValid(newItems)
	items := s.Items

	e := evictFromBottom(items, s.VirtualHeight())
	items = items[:e]
	hAfterRemove := totalHeight(items)

	newItems = dedupe(items, newItems)

	combined := make([]Resizable, 0, len(newItems)+len(items))
	combined = append(combined, newItems...)
	combined = append(combined, items...)

	offset := len(newItems) - 1
	seedY := 0.0
	if len(items) > 0 {
		bounds := rowBoundaries(items)
		row0End := bounds[1] - 1
		offset = len(newItems) + row0End
		if bounds[1] < len(items) {
			seedY = yOf(items[bounds[1]])
		}
	}
	if offset >= 0 {
		rows := packReverse(combined, offset, s.ContainerW, s.RowHeight)
		applyReverse(combined, rows, s.ContainerW, seedY)
	}

	hFinal := totalHeight(combined)
	normalizeY(combined)

	s.Items = combined
	if len(combined) > 0 {
		s.LastCursor = createdAtOf(combined[0])
		s.LastDirection = Up
	}
	return hFinal - hAfterRemove
}

// OnResize repacks the entire sequence from index 0 against the new
// container width and row height. Pure: it evicts nothing and emits no
// scroll compensation. The caller (Scroll Controller) is expected to
// preserve the viewport's scroll offset across resize (spec.md §4.2.3).
func (s *State) OnResize(containerW, containerH, rowHeight float64) {
	s.ContainerW, s.ContainerH = containerW, containerH
	if rowHeight > 0 {
		s.RowHeight = rowHeight
	}
	Resize(s.Items, s.ContainerW, s.RowHeight)
}
