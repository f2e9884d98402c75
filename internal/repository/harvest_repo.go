package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
)

type HarvestSQL struct {
	db      *sqlx.DB
	metrics *metrics.Collector
}

func NewHarvestSQL(db *sqlx.DB, m *metrics.Collector) *HarvestSQL {
	return &HarvestSQL{db: db, metrics: m}
}

const (
	insertHarvestSQL = `
		INSERT INTO harvest (id, picked_on, crop, quality, qty_kg, price, total, recorded_at)
		VALUES (:id, :picked_on, :crop, :quality, :qty_kg, :price, :total, :recorded_at)
	`

	evictHarvestSQL = `
		DELETE FROM harvest WHERE id NOT IN (
			SELECT id FROM harvest ORDER BY recorded_at DESC, id DESC LIMIT ?
		)
	`

	listHarvestSQL = `
		SELECT id, picked_on, crop, quality, qty_kg, price, total, recorded_at
		FROM harvest ORDER BY recorded_at DESC, id DESC LIMIT ?
	`

	totalsHarvestSQL = `
		SELECT COALESCE(SUM(qty_kg), 0) AS sum_kg, COALESCE(SUM(total), 0) AS sum_mad FROM harvest
	`
)

// Append inserts e, newest first, and trims the ledger to capacity rows.
func (r *HarvestSQL) Append(ctx context.Context, e models.HarvestEntry, capacity int) error {
	defer r.observe("harvest_append", time.Now())

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	} else {
		e.RecordedAt = e.RecordedAt.UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin harvest tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.NamedExecContext(ctx, insertHarvestSQL, e); err != nil {
		return fmt.Errorf("insert harvest: %w", err)
	}
	if capacity > 0 {
		if _, err := tx.ExecContext(ctx, tx.Rebind(evictHarvestSQL), capacity); err != nil {
			return fmt.Errorf("evict harvest: %w", err)
		}
	}
	return tx.Commit()
}

// List returns up to limit rows, newest first.
func (r *HarvestSQL) List(ctx context.Context, limit int) ([]models.HarvestEntry, error) {
	defer r.observe("harvest_list", time.Now())

	out := make([]models.HarvestEntry, 0, limit)
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(listHarvestSQL), limit); err != nil {
		return nil, err
	}
	return out, nil
}

// Totals sums quantity and value over the whole ledger.
func (r *HarvestSQL) Totals(ctx context.Context) (models.HarvestTotals, error) {
	defer r.observe("harvest_totals", time.Now())

	var t models.HarvestTotals
	if err := r.db.GetContext(ctx, &t, totalsHarvestSQL); err != nil {
		return models.HarvestTotals{}, err
	}
	return t, nil
}

func (r *HarvestSQL) observe(query string, start time.Time) {
	r.metrics.ObserveDBQuery(query, time.Since(start))
}
