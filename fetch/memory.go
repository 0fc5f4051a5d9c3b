package fetch

import (
	"context"
	"sort"
	"sync"

	"github.com/hey-adora/artbounty-sub000/gallery"
)

// Memory is a deterministic in-process Fetcher, useful for tests. It
// stores items sorted
// descending by CreatedAt, mirroring the teacher's RowTracker
// (example/kitchen/row-tracker.go) generalized from chat rows to gallery
// items.
type Memory struct {
	mu    sync.Mutex
	items []*gallery.Item
}

// NewMemory constructs a Memory fetcher, sorting the provided items
// descending by CreatedAt.
func NewMemory(items []*gallery.Item) *Memory {
	m := &Memory{items: append([]*gallery.Item(nil), items...)}
	m.sort()
	return m
}

func (m *Memory) sort() {
	sort.SliceStable(m.items, func(i, j int) bool {
		return m.items[i].CreatedAt > m.items[j].CreatedAt
	})
}

// Insert adds or replaces items by ID, keeping the store sorted.
func (m *Memory) Insert(items ...*gallery.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byID := make(map[string]int, len(m.items))
	for i, it := range m.items {
		byID[it.ItemID] = i
	}
	for _, it := range items {
		if idx, ok := byID[it.ItemID]; ok {
			m.items[idx] = it
			continue
		}
		byID[it.ItemID] = len(m.items)
		m.items = append(m.items, it)
	}
	m.sort()
}

// Len reports the number of items currently stored.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func clampN(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (m *Memory) OlderOrEqual(_ context.Context, t uint64, n int) (Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n = clampN(n)
	out := make([]*gallery.Item, 0, n)
	for _, it := range m.items {
		if len(out) >= n {
			break
		}
		if it.CreatedAt <= t {
			out = append(out, it)
		}
	}
	return Batch{Items: out}, nil
}

func (m *Memory) Older(_ context.Context, t uint64, n int) (Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n = clampN(n)
	out := make([]*gallery.Item, 0, n)
	for _, it := range m.items {
		if len(out) >= n {
			break
		}
		if it.CreatedAt < t {
			out = append(out, it)
		}
	}
	return Batch{Items: out}, nil
}

func (m *Memory) NewerOrEqual(_ context.Context, t uint64, n int) (Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n = clampN(n)
	var asc []*gallery.Item
	for i := len(m.items) - 1; i >= 0; i-- {
		it := m.items[i]
		if len(asc) >= n {
			break
		}
		if it.CreatedAt >= t {
			asc = append(asc, it)
		}
	}
	return Batch{Items: Reverse(asc)}, nil
}

func (m *Memory) Newer(_ context.Context, t uint64, n int) (Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n = clampN(n)
	var asc []*gallery.Item
	for i := len(m.items) - 1; i >= 0; i-- {
		it := m.items[i]
		if len(asc) >= n {
			break
		}
		if it.CreatedAt > t {
			asc = append(asc, it)
		}
	}
	return Batch{Items: Reverse(asc)}, nil
}

var _ Fetcher = (*Memory)(nil)
