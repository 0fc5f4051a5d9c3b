package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsGeneratesDescendingCreatedAt(t *testing.T) {
	items := Items(5, 1_000_000_000_000)
	if assert.Len(t, items, 5) {
		for i := 1; i < len(items); i++ {
			assert.Greater(t, items[i-1].CreatedAt, items[i].CreatedAt)
		}
	}
}

func TestItemsCycleDimensions(t *testing.T) {
	items := Items(len(Dimensions)*2, 1_000_000_000_000)
	for i, it := range items {
		want := Dimensions[i%len(Dimensions)]
		assert.Equal(t, want[0], it.Width)
		assert.Equal(t, want[1], it.Height)
	}
}

func TestItemsHaveUniqueIDs(t *testing.T) {
	items := Items(20, 1_000_000_000_000)
	seen := make(map[string]bool)
	for _, it := range items {
		assert.False(t, seen[it.ItemID])
		seen[it.ItemID] = true
	}
}

func TestPlaceholderColorIsDeterministic(t *testing.T) {
	a := PlaceholderColor("item-1")
	b := PlaceholderColor("item-1")
	c := PlaceholderColor("item-2")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCaptionIsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Caption())
}
