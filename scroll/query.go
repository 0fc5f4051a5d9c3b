package scroll

import (
	"net/url"
	"strconv"

	"github.com/hey-adora/artbounty-sub000/gallery"
)

// Query is the history-preserving state the Scroll Controller round-trips
// through URL parameters (spec.md §6): direction, time cursor, item count,
// and scroll offset. All fields are optional; none are authoritative for
// authentication.
type Query struct {
	Direction gallery.Direction
	Time      uint64
	ImgCount  int
	Scroll    int

	hasDirection, hasTime, hasImgCount, hasScroll bool
}

// Complete reports whether all four fields were present, the condition
// spec.md §4.3 requires to treat the query as a restoration rather than a
// fresh load.
func (q Query) Complete() bool {
	return q.hasDirection && q.hasTime && q.hasImgCount && q.hasScroll
}

// ParseQuery extracts a Query from URL values. Transport and serialization
// are explicitly out of the core's scope (spec.md §1) — this function is
// the one stdlib-only boundary where query parameters become a typed
// value; it does not know about HTTP requests or routing.
func ParseQuery(values url.Values) Query {
	var q Query
	if v := values.Get("direction"); v != "" {
		switch v {
		case "up":
			q.Direction = gallery.Up
			q.hasDirection = true
		case "down":
			q.Direction = gallery.Down
			q.hasDirection = true
		}
	}
	if v := values.Get("time"); v != "" {
		if t, err := strconv.ParseUint(v, 10, 64); err == nil {
			q.Time = t
			q.hasTime = true
		}
	}
	if v := values.Get("img_count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.ImgCount = n
			q.hasImgCount = true
		}
	}
	if v := values.Get("scroll"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Scroll = n
			q.hasScroll = true
		}
	}
	return q
}

// Encode renders the Query back into URL values, writing only the fields
// that have been set.
func (q Query) Encode() url.Values {
	values := url.Values{}
	if q.hasDirection {
		values.Set("direction", q.Direction.String())
	}
	if q.hasTime {
		values.Set("time", strconv.FormatUint(q.Time, 10))
	}
	if q.hasImgCount {
		values.Set("img_count", strconv.Itoa(q.ImgCount))
	}
	if q.hasScroll {
		values.Set("scroll", strconv.Itoa(q.Scroll))
	}
	return values
}

// WithDirection, WithTime, WithImgCount, and WithScroll return a copy of q
// with the named field set, used by the Scroll Controller to build the
// query it writes back after each successful mutation (spec.md §4.3 "URL
// sync").
func (q Query) WithDirection(d gallery.Direction) Query {
	q.Direction, q.hasDirection = d, true
	return q
}

func (q Query) WithTime(t uint64) Query {
	q.Time, q.hasTime = t, true
	return q
}

func (q Query) WithImgCount(n int) Query {
	q.ImgCount, q.hasImgCount = n, true
	return q
}

func (q Query) WithScroll(n int) Query {
	q.Scroll, q.hasScroll = n, true
	return q
}
