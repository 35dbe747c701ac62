// Package store journals reconciled extractions in a local sqlite file for
// observability and debugging. It is a side channel: the pipeline works
// fine without it, and it never caches fetched pages.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	Pool *sql.DB
}

func Open(path string) (*DB, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(1) // sqlite wants a single writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

func (d *DB) Migrate(ctx context.Context) error {
	_, err := d.Pool.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS extractions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  url TEXT NOT NULL,
  company TEXT NOT NULL,
  job_title TEXT NOT NULL,
  ad_source TEXT NOT NULL,
  full_description TEXT NOT NULL DEFAULT '',
  hiring_manager TEXT NOT NULL DEFAULT '',
  method TEXT NOT NULL,
  success INTEGER NOT NULL DEFAULT 0,
  needs_manual_html INTEGER NOT NULL DEFAULT 0,
  requested_by TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extractions_created_at ON extractions(created_at DESC);
`)
	return err
}

func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}
