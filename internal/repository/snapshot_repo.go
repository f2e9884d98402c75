package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"agrimoga/internal/metrics"
)

type SnapshotSQL struct {
	db      *sqlx.DB
	metrics *metrics.Collector
}

func NewSnapshotSQL(db *sqlx.DB, m *metrics.Collector) *SnapshotSQL {
	return &SnapshotSQL{db: db, metrics: m}
}

const (
	upsertSnapshotSQL = `
		INSERT INTO snapshots (snapshot_key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(snapshot_key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`

	selectSnapshotSQL = `SELECT value FROM snapshots WHERE snapshot_key=?`
)

// Put inserts or replaces the value stored under key. Last write wins.
func (r *SnapshotSQL) Put(ctx context.Context, key string, value []byte) error {
	defer r.observe("snapshot_put", time.Now())
	_, err := r.db.ExecContext(ctx, r.db.Rebind(upsertSnapshotSQL), key, string(value), time.Now().UTC())
	return err
}

// Get returns the stored value, or ErrNotFound.
func (r *SnapshotSQL) Get(ctx context.Context, key string) ([]byte, error) {
	defer r.observe("snapshot_get", time.Now())
	var value string
	if err := r.db.GetContext(ctx, &value, r.db.Rebind(selectSnapshotSQL), key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (r *SnapshotSQL) observe(query string, start time.Time) {
	r.metrics.ObserveDBQuery(query, time.Since(start))
}
