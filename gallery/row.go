package gallery

import "log"

// Row is a transient, packed row of items produced by the layout engine.
// It is never stored on Gallery State (spec.md §3).
type Row struct {
	// AspectRatioSum is the sum of width/height over the row.
	AspectRatioSum float64
	// ScaledWidthSum is the sum of each item's width when pre-scaled to the
	// target row height.
	ScaledWidthSum float64
	// Start, End are inclusive indices into the item sequence this row was
	// packed from.
	Start, End int
}

// packForward walks items from off towards the end of the slice, appending
// each item to the current row while it fits within containerW, and
// starting a new row otherwise (spec.md §4.1, "Row packing (forward, 'to
// bottom')").
func packForward(items []Resizable, off int, containerW, rowHeight float64) []Row {
	if off < 0 {
		off = 0
	}
	if off >= len(items) {
		return nil
	}
	var rows []Row
	var current *Row
	for i := off; i < len(items); i++ {
		scaled, ratio, ok := scaledWidth(items[i], rowHeight)
		if !ok {
			log.Printf("gallery: skipping item %q with non-finite aspect ratio", items[i].ID())
			continue
		}
		if current != nil && current.ScaledWidthSum+scaled <= containerW {
			current.ScaledWidthSum += scaled
			current.AspectRatioSum += ratio
			current.End = i
			continue
		}
		if current != nil {
			rows = append(rows, *current)
		}
		current = &Row{Start: i, End: i, ScaledWidthSum: scaled, AspectRatioSum: ratio}
	}
	if current != nil {
		rows = append(rows, *current)
	}
	return rows
}

// packReverse walks items from off towards the beginning of the slice,
// identical row-fitting logic to packForward but indices decrease. Rows are
// always stored with Start <= End even though they are discovered
// right-to-left (spec.md §4.1, "Row packing (reverse, 'to top')").
func packReverse(items []Resizable, off int, containerW, rowHeight float64) []Row {
	if off >= len(items) {
		off = len(items) - 1
	}
	if off < 0 {
		return nil
	}
	var rows []Row
	var current *Row
	for i := off; i >= 0; i-- {
		scaled, ratio, ok := scaledWidth(items[i], rowHeight)
		if !ok {
			log.Printf("gallery: skipping item %q with non-finite aspect ratio", items[i].ID())
			continue
		}
		if current != nil && current.ScaledWidthSum+scaled <= containerW {
			current.ScaledWidthSum += scaled
			current.AspectRatioSum += ratio
			current.Start = i
			continue
		}
		if current != nil {
			rows = append(rows, *current)
		}
		current = &Row{Start: i, End: i, ScaledWidthSum: scaled, AspectRatioSum: ratio}
	}
	if current != nil {
		rows = append(rows, *current)
	}
	return rows
}

// rowMaxWidth implements the last-row rule (spec.md §4.1): the terminal row
// of a packing pass (the last element of rows, regardless of direction) is
// sized against its own ScaledWidthSum instead of containerW when that sum
// is strictly less than containerW, so a half-full terminal row keeps items
// at the target row height instead of being stretched.
func rowMaxWidth(rows []Row, idx int, containerW float64) float64 {
	row := rows[idx]
	if idx == len(rows)-1 && row.ScaledWidthSum < containerW {
		return row.ScaledWidthSum
	}
	return containerW
}

// applyForward sizes and positions items covered by rows, growing y upward
// (increasing) from startY (spec.md §4.1's apply_forward).
func applyForward(items []Resizable, rows []Row, containerW, startY float64) {
	y := startY
	for idx, row := range rows {
		maxW := rowMaxWidth(rows, idx, containerW)
		rowH := maxW / row.AspectRatioSum
		x := 0.0
		for i := row.Start; i <= row.End; i++ {
			ratio, ok := aspectRatio(items[i])
			if !ok {
				continue
			}
			vw := rowH * ratio
			items[i].SetGeometry(vw, rowH, x, y)
			x += vw
		}
		y += rowH
	}
}

// applyReverse sizes and positions items covered by rows, seeded from the
// y-coordinate of the row immediately after the affected region (or 0) and
// decrementing y by each successive row height, producing negative y values
// that the Mutator must re-normalize (spec.md §4.1's apply_reverse).
func applyReverse(items []Resizable, rows []Row, containerW, seedY float64) {
	y := seedY
	for idx, row := range rows {
		maxW := rowMaxWidth(rows, idx, containerW)
		rowH := maxW / row.AspectRatioSum
		y -= rowH
		x := 0.0
		for i := row.Start; i <= row.End; i++ {
			ratio, ok := aspectRatio(items[i])
			if !ok {
				continue
			}
			vw := rowH * ratio
			items[i].SetGeometry(vw, rowH, x, y)
			x += vw
		}
	}
}

// Resize repacks all items from index 0 against the new container width and
// row height. Pure: it never evicts or emits scroll compensation (spec.md
// §4.2.3).
func Resize(items []Resizable, containerW, rowHeight float64) {
	if len(items) == 0 {
		return
	}
	rows := packForward(items, 0, containerW, rowHeight)
	applyForward(items, rows, containerW, 0)
}

// normalizeY shifts every item's y so that the minimum y across items
// becomes 0 (spec.md I6, GLOSSARY scenario #6). It is a no-op on an empty
// slice.
func normalizeY(items []Resizable) {
	if len(items) == 0 {
		return
	}
	minY := yOf(items[0])
	for _, it := range items[1:] {
		if y := yOf(it); y < minY {
			minY = y
		}
	}
	if minY == 0 {
		return
	}
	for _, it := range items {
		vw, vh, x, y := it.Geometry()
		it.SetGeometry(vw, vh, x, y-minY)
	}
}

func yOf(r Resizable) float64 {
	_, _, _, y := r.Geometry()
	return y
}

// totalHeight returns the virtual canvas height: the distance from the
// smallest y to the largest (y + vh) across items. Items must already be
// normalized or not; this measures the span regardless of origin.
func totalHeight(items []Resizable) float64 {
	if len(items) == 0 {
		return 0
	}
	_, vh0, _, y0 := items[0].Geometry()
	minY, maxY := y0, y0+vh0
	for _, it := range items[1:] {
		_, vh, _, y := it.Geometry()
		if y < minY {
			minY = y
		}
		if y+vh > maxY {
			maxY = y + vh
		}
	}
	return maxY - minY
}
