// Package httpapi is a deliberately thin net/http adapter exposing the
// Fetcher Adapter's four operations (spec.md §4.4) as JSON endpoints. It
// serves no endpoint for the direction/time/img_count/scroll query state;
// that round-trip lives in scroll.Query. HTTP transport and
// serialization are explicitly out of the core's scope (spec.md §1) —
// nothing here is imported by gallery, fetch, or scroll.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hey-adora/artbounty-sub000/fetch"
)

// Handler serves the four paging operations under a single mux.
type Handler struct {
	Fetcher fetch.Fetcher
}

// NewHandler constructs an http.Handler backed by f.
func NewHandler(f fetch.Fetcher) http.Handler {
	h := &Handler{Fetcher: f}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/posts/older-or-equal", h.serve(h.Fetcher.OlderOrEqual))
	mux.HandleFunc("/api/posts/older", h.serve(h.Fetcher.Older))
	mux.HandleFunc("/api/posts/newer-or-equal", h.serve(h.Fetcher.NewerOrEqual))
	mux.HandleFunc("/api/posts/newer", h.serve(h.Fetcher.Newer))
	return mux
}

type response struct {
	Kind  string      `json:"kind"`
	Items interface{} `json:"items,omitempty"`
	Error string      `json:"error,omitempty"`
}

// serve wraps one of the four Fetcher methods as an HTTP handler reading
// the "time" and "limit" query parameters (spec.md §6).
func (h *Handler) serve(fn func(ctx context.Context, t uint64, n int) (fetch.Batch, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		t, err := strconv.ParseUint(q.Get("time"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, response{Kind: "error", Error: "invalid or missing time"})
			return
		}
		n, err := strconv.Atoi(q.Get("limit"))
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, response{Kind: "error", Error: "invalid or missing limit"})
			return
		}
		batch, err := fn(r.Context(), t, n)
		if err != nil {
			writeJSON(w, http.StatusBadGateway, response{Kind: "error", Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, response{Kind: "posts", Items: batch.Items})
	}
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
