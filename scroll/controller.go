// Package scroll implements the Scroll Controller and Observer Bridge
// (spec.md §4.3, §4.5): the component that owns the viewport's scroll
// position, drives paging against a fetch.Fetcher, applies the Mutator's
// scroll-compensation deltas, and mirrors state into URL query parameters.
package scroll

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"github.com/hey-adora/artbounty-sub000/fetch"
	"github.com/hey-adora/artbounty-sub000/gallery"
)

// Viewport is the owning application's scrollable element. The core never
// touches the DOM directly (spec.md §1); it only ever calls these methods,
// mirroring the teacher's separation between list.Manager (pure state) and
// the gioui layout.List it drives.
type Viewport interface {
	ScrollTop() float64
	ClientHeight() float64
	ScrollHeight() float64
	ScrollBy(dy float64)
}

// DefaultPollInterval is the polling cadence from spec.md §4.3 ("≈ 2s").
const DefaultPollInterval = 2 * time.Second

// DefaultURLSyncInterval is the separate cadence at which scrollTop is
// mirrored into the URL (spec.md §4.3, "≈ 1s"). It ticks more often than
// DefaultPollInterval.
const DefaultURLSyncInterval = 1 * time.Second

// FitCount implements the fit_count(w, h, rh) heuristic from spec.md §4.3:
// floor((w*h)/(rh^2)) * 2, doubled so the first batch comfortably
// overscrolls one viewport.
func FitCount(w, h, rh float64) int {
	if rh <= 0 {
		return 0
	}
	return int(math.Floor((w*h)/(rh*rh))) * 2
}

// Controller is the Scroll Controller. It lives for the lifetime of the
// gallery view (spec.md §4.3).
type Controller struct {
	State    *gallery.State
	Fetcher  fetch.Fetcher
	Viewport Viewport

	// Invalidator triggers a new frame/render in the owning view, mirroring
	// list.Hooks.Invalidator in the teacher.
	Invalidator func()

	// PollInterval and URLSyncInterval default to DefaultPollInterval and
	// DefaultURLSyncInterval when zero.
	PollInterval    time.Duration
	URLSyncInterval time.Duration

	// OnQueryChange is invoked whenever the URL-mirrored Query changes,
	// letting the application write it into the address bar without
	// creating a history entry (spec.md §4.3 "URL sync"). May be nil.
	OnQueryChange func(Query)

	mu            sync.Mutex
	busy          map[gallery.Direction]bool
	exhausted     map[gallery.Direction]bool
	lastRequest   gallery.Direction
	pendingScroll *float64
	query         Query
}

// NewController constructs a Controller over the given State, Fetcher, and
// Viewport.
func NewController(state *gallery.State, fetcher fetch.Fetcher, viewport Viewport) *Controller {
	return &Controller{
		State:       state,
		Fetcher:     fetcher,
		Viewport:    viewport,
		Invalidator: func() {},
		busy:        make(map[gallery.Direction]bool, 2),
		exhausted:   make(map[gallery.Direction]bool, 2),
	}
}

// Exhausted reports whether the given direction returned an empty batch
// since the last fresh initialization, and is therefore not eligible for
// further triggers (spec.md §4.4, §C.1 of SPEC_FULL.md).
func (c *Controller) Exhausted(dir gallery.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exhausted[dir]
}

func (c *Controller) isBusy(dir gallery.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy[dir]
}

// Initialize reads the recorded Query. If it is complete (spec.md §4.3) it
// is treated as a restoration: the matching direction is fetched with the
// recorded time and a limit equal to img_count, and scroll is stashed as a
// PendingScroll to be delivered after the next child-list mutation.
// Otherwise a fresh fetch is issued downward from now.
func (c *Controller) Initialize(ctx context.Context, q Query, now uint64) error {
	if c.State.ContainerW <= 0 || c.State.ContainerH <= 0 {
		return gallery.ErrNoContainer
	}
	c.mu.Lock()
	for dir := range c.exhausted {
		delete(c.exhausted, dir)
	}
	c.mu.Unlock()
	if q.Complete() {
		n := q.ImgCount
		var batch fetch.Batch
		var err error
		switch q.Direction {
		case gallery.Up:
			batch, err = c.Fetcher.NewerOrEqual(ctx, q.Time, n)
		default:
			batch, err = c.Fetcher.OlderOrEqual(ctx, q.Time, n)
		}
		if err != nil {
			log.Printf("scroll: restoration fetch failed: %v", err)
			return err
		}
		c.applyBatch(q.Direction, batch)
		scroll := float64(q.Scroll)
		c.mu.Lock()
		c.pendingScroll = &scroll
		c.query = q
		c.mu.Unlock()
		return nil
	}

	limit := FitCount(c.State.ContainerW, c.State.ContainerH, c.State.RowHeight)
	batch, err := c.Fetcher.OlderOrEqual(ctx, now, limit)
	if err != nil {
		log.Printf("scroll: initial fetch failed: %v", err)
		return err
	}
	c.applyBatch(gallery.Down, batch)
	return nil
}

// applyBatch merges a freshly fetched batch into the gallery state via the
// Mutator, applies scroll compensation, updates exhaustion/cursor
// bookkeeping, writes the URL query, and invalidates the view.
func (c *Controller) applyBatch(dir gallery.Direction, batch fetch.Batch) {
	items := make([]gallery.Resizable, len(batch.Items))
	for i, it := range batch.Items {
		items[i] = it
	}

	c.mu.Lock()
	if len(items) == 0 {
		c.exhausted[dir] = true
	} else {
		c.exhausted[dir] = false
	}
	c.mu.Unlock()

	c.mu.Lock()
	var delta float64
	switch dir {
	case gallery.Up:
		delta = c.State.PrependTop(items)
	default:
		delta = c.State.AppendBottom(items)
	}
	c.mu.Unlock()
	if c.Viewport != nil && delta != 0 {
		c.Viewport.ScrollBy(delta)
	}

	c.mu.Lock()
	q := c.query.WithDirection(c.State.LastDirection).WithTime(c.State.LastCursor).WithImgCount(len(c.State.Items))
	c.query = q
	c.mu.Unlock()
	if c.OnQueryChange != nil {
		c.OnQueryChange(q)
	}
	if c.Invalidator != nil {
		c.Invalidator()
	}
}

// TryTrigger dispatches a fetch in the given direction if and only if that
// direction is neither busy nor exhausted. Additional triggers while busy
// are silently dropped, matching the single-flight-per-direction contract
// of spec.md §5 (no cancellation; extra triggers are coalesced away).
func (c *Controller) TryTrigger(ctx context.Context, dir gallery.Direction) {
	c.mu.Lock()
	if c.busy[dir] || c.exhausted[dir] {
		c.mu.Unlock()
		return
	}
	c.busy[dir] = true
	c.lastRequest = dir
	// Snapshot everything the fetch needs while still holding the lock:
	// State.Items is the same slice a concurrent opposite-direction
	// applyBatch or a ResizeBridge.Notify may be mutating, so it must not
	// be read again after Unlock (spec.md §5's "mutated only from its
	// callback sites" guarantee).
	var cursor uint64
	switch dir {
	case gallery.Up:
		if len(c.State.Items) > 0 {
			cursor = c.cursorAt(0)
		}
	default:
		if n := len(c.State.Items); n > 0 {
			cursor = c.cursorAt(n - 1)
		}
	}
	limit := FitCount(c.State.ContainerW, c.State.ContainerH, c.State.RowHeight)
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			c.busy[dir] = false
			c.mu.Unlock()
		}()

		var (
			batch fetch.Batch
			err   error
		)
		switch dir {
		case gallery.Up:
			batch, err = c.Fetcher.Newer(ctx, cursor, limit)
		default:
			batch, err = c.Fetcher.Older(ctx, cursor, limit)
		}
		if err != nil {
			log.Printf("scroll: fetch %s failed, will retry next poll: %v", dir, err)
			return
		}
		c.applyBatch(dir, batch)
	}()
}

func (c *Controller) cursorAt(index int) uint64 {
	if t, ok := c.State.Items[index].(gallery.Timestamped); ok {
		return t.Timestamp()
	}
	return 0
}

// Poll implements the polling loop of spec.md §4.3: if scrollTop is within
// one row height of the top, trigger prepend_top; if scrollHeight minus the
// bottom edge of the viewport is within one row height, trigger
// append_bottom.
func (c *Controller) Poll(ctx context.Context) {
	if c.Viewport == nil {
		return
	}
	rh := c.State.RowHeight
	top := c.Viewport.ScrollTop()
	height := c.Viewport.ClientHeight()
	total := c.Viewport.ScrollHeight()
	if top < rh {
		c.TryTrigger(ctx, gallery.Up)
	}
	if total-(top+height) < rh {
		c.TryTrigger(ctx, gallery.Down)
	}
}

// DeliverPendingScroll applies and clears any PendingScroll, to be called
// by a MutationBridge once per observed child-list mutation (spec.md
// §4.3's "Pending scroll delivery").
func (c *Controller) DeliverPendingScroll() {
	c.mu.Lock()
	pending := c.pendingScroll
	c.pendingScroll = nil
	c.mu.Unlock()
	if pending == nil || *pending <= 0 {
		return
	}
	if c.Viewport != nil {
		c.Viewport.ScrollBy(*pending)
	}
}

// Run drives the polling loop and URL scroll sync on their respective
// cadences until ctx is cancelled. It is an optional convenience; embedding
// applications with their own event loop may call Poll directly instead,
// the way the teacher drives list.Manager from gioui's own frame loop.
func (c *Controller) Run(ctx context.Context) {
	pollInterval := c.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	syncInterval := c.URLSyncInterval
	if syncInterval <= 0 {
		syncInterval = DefaultURLSyncInterval
	}
	pollTicker := time.NewTicker(pollInterval)
	syncTicker := time.NewTicker(syncInterval)
	defer pollTicker.Stop()
	defer syncTicker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-pollTicker.C:
			c.Poll(ctx)
		case <-syncTicker.C:
			if c.Viewport == nil || c.OnQueryChange == nil {
				continue
			}
			c.mu.Lock()
			q := c.query.WithScroll(int(c.Viewport.ScrollTop()))
			c.query = q
			c.mu.Unlock()
			c.OnQueryChange(q)
		}
	}
}
