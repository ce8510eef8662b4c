// Package storage keeps an optional local archive of fetched feed pages and
// summaries. The TUI only writes to it; the archive subcommands read it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	_ "modernc.org/sqlite"

	"github.com/glabrego/newsdeck/internal/news"
)

// ArchivedItem is an item as recorded in the archive.
type ArchivedItem struct {
	Tab       news.TabID
	Key       string
	Heading   string
	Body      string
	URL       string
	DateLabel string
	Page      int
	FetchedAt time.Time
}

type Stats struct {
	ItemsByTab map[news.TabID]int
	Summaries  int
	Oldest     time.Time
	Newest     time.Time
}

type Repository struct {
	db    *sql.DB
	nowFn func() time.Time
}

func NewRepository(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Repository{db: db, nowFn: time.Now}, nil
}

// Open creates the archive at path and ensures its schema exists.
func Open(ctx context.Context, path string) (*Repository, error) {
	repo, err := NewRepository(path)
	if err != nil {
		return nil, err
	}
	if err := repo.Init(ctx); err != nil {
		_ = repo.Close()
		return nil, err
	}
	return repo, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS items (
  tab TEXT NOT NULL,
  item_key TEXT NOT NULL,
  heading TEXT NOT NULL,
  body TEXT NOT NULL,
  url TEXT NOT NULL DEFAULT '',
  date_label TEXT NOT NULL,
  page INTEGER NOT NULL,
  raw TEXT NOT NULL,
  fetched_at TEXT NOT NULL,
  PRIMARY KEY (tab, item_key)
);
CREATE INDEX IF NOT EXISTS idx_items_fetched ON items(fetched_at DESC);

CREATE TABLE IF NOT EXISTS summaries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  range_id TEXT NOT NULL,
  text TEXT NOT NULL,
  fetched_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveItems records one fetched page. Items already archived for the tab
// are refreshed in place.
func (r *Repository) SaveItems(ctx context.Context, tab news.TabID, page int, items []news.Item) error {
	items = lo.UniqBy(items, func(it news.Item) string { return it.Key })
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO items (tab, item_key, heading, body, url, date_label, page, raw, fetched_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(tab, item_key) DO UPDATE SET
  heading=excluded.heading,
  body=excluded.body,
  url=excluded.url,
  date_label=excluded.date_label,
  page=excluded.page,
  raw=excluded.raw,
  fetched_at=excluded.fetched_at
`)
	if err != nil {
		return fmt.Errorf("prepare save statement: %w", err)
	}
	defer stmt.Close()

	now := r.nowFn().UTC().Format(time.RFC3339Nano)
	for _, item := range items {
		_, err := stmt.ExecContext(
			ctx,
			string(tab),
			item.Key,
			item.Heading(tab),
			item.Body(tab),
			item.URL,
			item.DateLabel(),
			page,
			string(item.Raw),
			now,
		)
		if err != nil {
			return fmt.Errorf("save item %s: %w", item.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repository) SaveSummary(ctx context.Context, rng news.Range, text string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO summaries (range_id, text, fetched_at) VALUES (?, ?, ?)`,
		string(rng), text, r.nowFn().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}

// ListItems returns the most recently fetched items, optionally restricted
// to one tab (empty tab means all).
func (r *Repository) ListItems(ctx context.Context, tab news.TabID, limit int) ([]ArchivedItem, error) {
	if limit < 1 {
		limit = 20
	}

	query := `
SELECT tab, item_key, heading, body, url, date_label, page, fetched_at
FROM items`
	args := []any{}
	if tab != "" {
		query += "\nWHERE tab = ?"
		args = append(args, string(tab))
	}
	query += "\nORDER BY fetched_at DESC, page ASC\nLIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	out := make([]ArchivedItem, 0, limit)
	for rows.Next() {
		var item ArchivedItem
		var tabID, fetchedAt string
		if err := rows.Scan(
			&tabID,
			&item.Key,
			&item.Heading,
			&item.Body,
			&item.URL,
			&item.DateLabel,
			&item.Page,
			&fetchedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.Tab = news.TabID(tabID)
		item.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("parse item fetched_at %q: %w", fetchedAt, err)
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

func (r *Repository) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{ItemsByTab: make(map[news.TabID]int)}

	rows, err := r.db.QueryContext(ctx, `SELECT tab, COUNT(*) FROM items GROUP BY tab`)
	if err != nil {
		return Stats{}, fmt.Errorf("count items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tab string
		var count int
		if err := rows.Scan(&tab, &count); err != nil {
			return Stats{}, fmt.Errorf("scan item count: %w", err)
		}
		stats.ItemsByTab[news.TabID(tab)] = count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("rows iteration: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM summaries`).Scan(&stats.Summaries); err != nil {
		return Stats{}, fmt.Errorf("count summaries: %w", err)
	}

	var oldest, newest sql.NullString
	if err := r.db.QueryRowContext(ctx, `SELECT MIN(fetched_at), MAX(fetched_at) FROM items`).Scan(&oldest, &newest); err != nil {
		return Stats{}, fmt.Errorf("item time range: %w", err)
	}
	if oldest.Valid {
		stats.Oldest, _ = time.Parse(time.RFC3339Nano, oldest.String)
	}
	if newest.Valid {
		stats.Newest, _ = time.Parse(time.RFC3339Nano, newest.String)
	}
	return stats, nil
}

// Prune deletes items and summaries fetched more than olderThan ago and
// returns how many rows were removed.
func (r *Repository) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := r.nowFn().Add(-olderThan).UTC().Format(time.RFC3339Nano)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var total int64
	for _, table := range []string{"items", "summaries"} {
		res, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE fetched_at < ?`, cutoff)
		if err != nil {
			return 0, fmt.Errorf("prune %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("prune %s rows affected: %w", table, err)
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return total, nil
}
