// Package store provides an embedded document store backing the gallery
// core's Fetcher Adapter (spec.md §4.4, §6). It is a concrete,
// non-core collaborator: the gallery package never imports it.
//
// It replaces the original implementation's SurrealDB-backed post table
// (original_source/artbounty/src/db.rs) with a pure-Go embedded SQLite
// database, keeping the same cursor-keyed paging shape:
// "SELECT * FROM post WHERE created_at <= ? ORDER BY created_at DESC".
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/hey-adora/artbounty-sub000/fetch"
	"github.com/hey-adora/artbounty-sub000/gallery"
)

// Store is an embedded SQLite-backed post table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite database at path and ensures
// the post schema exists. Pass ":memory:" for an ephemeral, test-only
// store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS post (
	id TEXT PRIMARY KEY,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	ref_hash TEXT NOT NULL,
	ref_ext TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS post_created_at_idx ON post (created_at);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces a post row for the given item.
func (s *Store) Put(ctx context.Context, item *gallery.Item) error {
	const q = `
INSERT INTO post (id, width, height, created_at, ref_hash, ref_ext)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	width = excluded.width,
	height = excluded.height,
	created_at = excluded.created_at,
	ref_hash = excluded.ref_hash,
	ref_ext = excluded.ref_ext;
`
	_, err := s.db.ExecContext(ctx, q, item.ItemID, item.Width, item.Height, item.CreatedAt, item.Ref.Hash, item.Ref.Ext)
	if err != nil {
		return fmt.Errorf("store: put %q: %w", item.ItemID, err)
	}
	return nil
}

func (s *Store) query(ctx context.Context, whereClause string, args ...interface{}) (fetch.Batch, error) {
	q := fmt.Sprintf(`
SELECT id, width, height, created_at, ref_hash, ref_ext FROM post
WHERE %s
ORDER BY created_at DESC
LIMIT ?;
`, whereClause)
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return fetch.Batch{}, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()

	var items []*gallery.Item
	for rows.Next() {
		it := &gallery.Item{}
		if err := rows.Scan(&it.ItemID, &it.Width, &it.Height, &it.CreatedAt, &it.Ref.Hash, &it.Ref.Ext); err != nil {
			return fetch.Batch{}, fmt.Errorf("store: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return fetch.Batch{}, fmt.Errorf("store: rows: %w", err)
	}
	return fetch.Batch{Items: items}, nil
}

// OlderOrEqual implements fetch.Fetcher.
func (s *Store) OlderOrEqual(ctx context.Context, t uint64, n int) (fetch.Batch, error) {
	return s.query(ctx, "created_at <= ?", t, n)
}

// Older implements fetch.Fetcher.
func (s *Store) Older(ctx context.Context, t uint64, n int) (fetch.Batch, error) {
	return s.query(ctx, "created_at < ?", t, n)
}

// queryAscending is shared by NewerOrEqual/Newer, which page ascending by
// created_at and reverse the result (spec.md §4.4).
func (s *Store) queryAscending(ctx context.Context, whereClause string, t uint64, n int) (fetch.Batch, error) {
	q := fmt.Sprintf(`
SELECT id, width, height, created_at, ref_hash, ref_ext FROM post
WHERE %s
ORDER BY created_at ASC
LIMIT ?;
`, whereClause)
	rows, err := s.db.QueryContext(ctx, q, t, n)
	if err != nil {
		return fetch.Batch{}, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()

	var items []*gallery.Item
	for rows.Next() {
		it := &gallery.Item{}
		if err := rows.Scan(&it.ItemID, &it.Width, &it.Height, &it.CreatedAt, &it.Ref.Hash, &it.Ref.Ext); err != nil {
			return fetch.Batch{}, fmt.Errorf("store: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return fetch.Batch{}, fmt.Errorf("store: rows: %w", err)
	}
	return fetch.Batch{Items: fetch.Reverse(items)}, nil
}

// NewerOrEqual implements fetch.Fetcher.
func (s *Store) NewerOrEqual(ctx context.Context, t uint64, n int) (fetch.Batch, error) {
	return s.queryAscending(ctx, "created_at >= ?", t, n)
}

// Newer implements fetch.Fetcher.
func (s *Store) Newer(ctx context.Context, t uint64, n int) (fetch.Batch, error) {
	return s.queryAscending(ctx, "created_at > ?", t, n)
}

var _ fetch.Fetcher = (*Store)(nil)
