package fixture

import (
	"context"
	"math/rand"
	"time"

	"github.com/hey-adora/artbounty-sub000/fetch"
)

// LatencyFetcher wraps a fetch.Fetcher and sleeps a random duration before
// delegating, reintroducing the original mock data layer's simulated
// network latency (SPEC_FULL.md §C.2), grounded on
// example/kitchen/row-tracker.go's RowTracker.Load. It exists to exercise
// the Scroll Controller's busy-flag coalescing (spec.md §5) under realistic
// conditions during local development.
type LatencyFetcher struct {
	fetch.Fetcher
	// Max is the upper bound (exclusive) on simulated latency. Defaults to
	// one second if zero.
	Max time.Duration
}

func (l LatencyFetcher) sleep(ctx context.Context) {
	max := l.Max
	if max <= 0 {
		max = time.Second
	}
	d := time.Duration(rand.Int63n(int64(max)))
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

func (l LatencyFetcher) OlderOrEqual(ctx context.Context, t uint64, n int) (fetch.Batch, error) {
	l.sleep(ctx)
	return l.Fetcher.OlderOrEqual(ctx, t, n)
}

func (l LatencyFetcher) Older(ctx context.Context, t uint64, n int) (fetch.Batch, error) {
	l.sleep(ctx)
	return l.Fetcher.Older(ctx, t, n)
}

func (l LatencyFetcher) NewerOrEqual(ctx context.Context, t uint64, n int) (fetch.Batch, error) {
	l.sleep(ctx)
	return l.Fetcher.NewerOrEqual(ctx, t, n)
}

func (l LatencyFetcher) Newer(ctx context.Context, t uint64, n int) (fetch.Batch, error) {
	l.sleep(ctx)
	return l.Fetcher.Newer(ctx, t, n)
}

var _ fetch.Fetcher = LatencyFetcher{}
