package scroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hey-adora/artbounty-sub000/fetch"
	"github.com/hey-adora/artbounty-sub000/gallery"
)

func newTestController() (*Controller, *fakeViewport) {
	m := fetch.NewMemory(seedItems(10, 1000))
	state := gallery.NewState()
	state.ContainerW, state.ContainerH = 1000, 500
	vp := &fakeViewport{clientHeight: 500}
	return NewController(state, m, vp), vp
}

func TestResizeBridgeDedupesIdenticalSizes(t *testing.T) {
	c, _ := newTestController()
	invalidated := 0
	c.Invalidator = func() { invalidated++ }
	b := &ResizeBridge{Controller: c, RowHeight: 250}

	b.Notify(800, 600)
	b.Notify(800, 600)
	b.Notify(800, 600)

	assert.Equal(t, 1, invalidated)
}

func TestResizeBridgeFiresOnChange(t *testing.T) {
	c, _ := newTestController()
	invalidated := 0
	c.Invalidator = func() { invalidated++ }
	b := &ResizeBridge{Controller: c, RowHeight: 250}

	b.Notify(800, 600)
	b.Notify(900, 600)

	assert.Equal(t, 2, invalidated)
	assert.Equal(t, 900.0, c.State.ContainerW)
}

func TestIntersectionBridgeFiresOnlyOnActivationEdge(t *testing.T) {
	c, _ := newTestController()
	b := &IntersectionBridge{Controller: c}

	// Index 0 of 9 is within the leading third (N=3). Its first report of
	// visible=true is "visible on mount" and must not trigger.
	b.Notify(context.Background(), 0, 9, true)
	assert.False(t, c.isBusy(gallery.Up))

	// Leaving the viewport and coming back is a transition from invisible
	// and triggers Up synchronously (TryTrigger sets the busy flag before
	// spawning its goroutine).
	b.Notify(context.Background(), 0, 9, false)
	b.Notify(context.Background(), 0, 9, true)
	assert.True(t, c.isBusy(gallery.Up))

	// A repeated visible=true report for the same index is not a new
	// transition and must not attempt a second trigger.
	c.mu.Lock()
	c.busy[gallery.Up] = false
	c.mu.Unlock()
	b.Notify(context.Background(), 0, 9, true)
	assert.False(t, c.isBusy(gallery.Up))
}

func TestIntersectionBridgeIgnoresMiddleIndices(t *testing.T) {
	c, _ := newTestController()
	b := &IntersectionBridge{Controller: c}

	b.Notify(context.Background(), 4, 9, false)
	b.Notify(context.Background(), 4, 9, true)
	assert.False(t, c.isBusy(gallery.Up))
	assert.False(t, c.isBusy(gallery.Down))
}

func TestIntersectionBridgeTriggersDownNearEnd(t *testing.T) {
	c, _ := newTestController()
	c.mu.Lock()
	c.exhausted[gallery.Down] = true
	c.mu.Unlock()
	b := &IntersectionBridge{Controller: c}

	b.Notify(context.Background(), 8, 9, false)
	b.Notify(context.Background(), 8, 9, true)
	// Exhausted, so TryTrigger is a no-op, but it must not panic and must
	// not mark busy.
	assert.False(t, c.isBusy(gallery.Down))
}

func TestMutationBridgeDeliversPendingScroll(t *testing.T) {
	c, vp := newTestController()
	pending := 123.0
	c.pendingScroll = &pending
	b := &MutationBridge{Controller: c}

	b.Notify()

	assert.Equal(t, []float64{123.0}, vp.scrolledBy)
}
