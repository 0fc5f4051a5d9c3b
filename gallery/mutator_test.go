package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sixRowItems returns six items laid out as three rows of two, at y=0,
// 500, 1000, each 500px tall, the fixture shared by the eviction tests.
func sixRowItems() []Resizable {
	items := make([]Resizable, 6)
	for row := 0; row < 3; row++ {
		y := float64(row * 500)
		items[row*2] = mkItem(string(rune('a'+row*2)), 500, 500)
		items[row*2].SetGeometry(500, 500, 0, y)
		items[row*2+1] = mkItem(string(rune('a'+row*2+1)), 500, 500)
		items[row*2+1].SetGeometry(500, 500, 500, y)
	}
	return items
}

func TestRowBoundaries(t *testing.T) {
	items := sixRowItems()
	assert.Equal(t, []int{0, 2, 4, 6}, rowBoundaries(items))
}

func TestRowBoundariesEmpty(t *testing.T) {
	assert.Equal(t, []int{0}, rowBoundaries(nil))
}

func TestEvictFromTopEvictsWholeRows(t *testing.T) {
	items := sixRowItems()
	k := evictFromTop(items, 1000)
	assert.Equal(t, 2, k)
}

func TestEvictFromTopNoEvictionNeeded(t *testing.T) {
	items := sixRowItems()
	k := evictFromTop(items, 10000)
	assert.Equal(t, 0, k)
}

func TestEvictFromBottomEvictsWholeRows(t *testing.T) {
	items := sixRowItems()
	e := evictFromBottom(items, 1000)
	assert.Equal(t, 4, e)
}

func TestEvictFromBottomNoEvictionNeeded(t *testing.T) {
	items := sixRowItems()
	e := evictFromBottom(items, 10000)
	assert.Equal(t, 6, e)
}

func TestFilterValidDropsZeroDimension(t *testing.T) {
	items := []Resizable{
		mkItem("a", 500, 500),
		mkItem("bad", 0, 500),
	}
	out := filterValid(items)
	if assert.Len(t, out, 1) {
		assert.Equal(t, "a", out[0].ID())
	}
}

func TestVirtualHeight(t *testing.T) {
	s := NewState()
	s.ContainerH = 100
	assert.Equal(t, float64(100*EvictionMultiplier), s.VirtualHeight())
	s.EvictionK = 2
	assert.Equal(t, 200.0, s.VirtualHeight())
}

func TestAppendBottomIntoEmptyState(t *testing.T) {
	s := NewState()
	s.ContainerW = 1000
	s.ContainerH = 100000 // large enough that eviction never triggers here
	s.RowHeight = 500

	delta := s.AppendBottom([]Resizable{
		mkItem("a", 500, 500),
		mkItem("b", 500, 500),
	})

	assert.Equal(t, 0.0, delta)
	if assert.Len(t, s.Items, 2) {
		vw, vh, x, y := s.Items[0].Geometry()
		assert.Equal(t, [4]float64{500, 500, 0, 0}, [4]float64{vw, vh, x, y})
		vw, vh, x, y = s.Items[1].Geometry()
		assert.Equal(t, [4]float64{500, 500, 500, 0}, [4]float64{vw, vh, x, y})
	}
	assert.Equal(t, Down, s.LastDirection)
}

func TestAppendBottomDedupesAgainstExisting(t *testing.T) {
	s := NewState()
	s.ContainerW = 1000
	s.ContainerH = 100000
	s.RowHeight = 500
	s.AppendBottom([]Resizable{mkItem("a", 500, 500)})

	s.AppendBottom([]Resizable{mkItem("a", 500, 500), mkItem("b", 500, 500)})

	assert.Len(t, s.Items, 2)
}

// TestPrependTopScrollCompensation walks a hand-computed scenario: two
// existing items in one row, prepending a single new item that forms its
// own row above. The compensation is that new row's height, +500.
func TestPrependTopScrollCompensation(t *testing.T) {
	s := NewState()
	s.ContainerW = 1000
	s.ContainerH = 100000
	s.RowHeight = 500
	s.AppendBottom([]Resizable{
		mkItem("a", 500, 500),
		mkItem("b", 500, 500),
	})

	delta := s.PrependTop([]Resizable{mkItem("c", 500, 500)})

	assert.Equal(t, 500.0, delta)
	if assert.Len(t, s.Items, 3) {
		assert.Equal(t, "c", s.Items[0].ID())
		_, _, _, y0 := s.Items[0].Geometry()
		_, _, _, y1 := s.Items[1].Geometry()
		_, _, _, y2 := s.Items[2].Geometry()
		assert.Equal(t, 0.0, y0)
		assert.Equal(t, 500.0, y1)
		assert.Equal(t, 500.0, y2)
	}
	assert.Equal(t, Up, s.LastDirection)
}

func TestPrependTopDedupesAgainstExisting(t *testing.T) {
	s := NewState()
	s.ContainerW = 1000
	s.ContainerH = 100000
	s.RowHeight = 500
	s.AppendBottom([]Resizable{mkItem("a", 500, 500)})

	s.PrependTop([]Resizable{mkItem("a", 500, 500), mkItem("b", 500, 500)})

	assert.Len(t, s.Items, 2)
}

// TestAppendBottomEvictsAcrossMultipleRows reproduces spec.md §8 scenario #3
// and property P8: appending onto a sequence that already exceeds
// VirtualHeight must evict whole rows of mixed-aspect items from the top,
// and the returned delta must reflect that eviction (non-zero, and never
// positive, since dropping content can only shrink the sequence's height).
func TestAppendBottomEvictsAcrossMultipleRows(t *testing.T) {
	s := NewState()
	s.ContainerW = 1000
	s.ContainerH = 100 // VirtualHeight = 800: small enough to force eviction below.
	s.RowHeight = 500

	initial := []Resizable{
		mkItem("a", 500, 500), mkItem("b", 500, 500), // row 0: two squares
		mkItem("c", 1000, 500), // row 1: one landscape, fills the row alone
		mkItem("d", 250, 500), mkItem("e", 250, 500), mkItem("f", 250, 500), mkItem("g", 250, 500), // row 2: four portraits
	}
	s.AppendBottom(initial)
	assert.Greater(t, totalHeight(s.Items), s.VirtualHeight())

	before := make(map[string]bool, len(s.Items))
	for _, it := range s.Items {
		before[it.ID()] = true
	}

	delta := s.AppendBottom([]Resizable{mkItem("h", 500, 500), mkItem("i", 500, 500)})

	after := make(map[string]bool, len(s.Items))
	for _, it := range s.Items {
		after[it.ID()] = true
	}
	evicted := 0
	for id := range before {
		if !after[id] {
			evicted++
		}
	}

	assert.Equal(t, 3, evicted, "eviction should have dropped row 0 and row 1 whole")
	assert.NotEqual(t, 0.0, delta)
	assert.LessOrEqual(t, delta, 0.0)
}

func TestOnResizeRepacksWithoutEviction(t *testing.T) {
	s := NewState()
	s.ContainerW = 1000
	s.ContainerH = 100000
	s.RowHeight = 500
	s.AppendBottom([]Resizable{
		mkItem("a", 500, 500),
		mkItem("b", 500, 500),
		mkItem("c", 500, 500),
	})

	s.OnResize(500, 100000, 500)

	assert.Equal(t, 500.0, s.ContainerW)
	assert.Len(t, s.Items, 3)
	// At a 500px container width, each 500x500 item now fills an entire
	// row on its own, so the third item lands two row-heights down.
	_, _, _, y2 := s.Items[2].Geometry()
	assert.Equal(t, 1000.0, y2)
}
