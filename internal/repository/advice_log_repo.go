package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
)

type AdviceLogSQL struct {
	db      *sqlx.DB
	metrics *metrics.Collector
}

func NewAdviceLogSQL(db *sqlx.DB, m *metrics.Collector) *AdviceLogSQL {
	return &AdviceLogSQL{db: db, metrics: m}
}

const (
	insertAdviceSQL = `
		INSERT INTO advisory_log (id, recorded_at, crop, zone, location, quantity_l, duration_minutes, decision, weather)
		VALUES (:id, :recorded_at, :crop, :zone, :location, :quantity_l, :duration_minutes, :decision, :weather)
	`

	// keeps the newest rows; ties on recorded_at break on id
	evictAdviceSQL = `
		DELETE FROM advisory_log WHERE id NOT IN (
			SELECT id FROM advisory_log ORDER BY recorded_at DESC, id DESC LIMIT ?
		)
	`

	listAdviceSQL = `
		SELECT id, recorded_at, crop, zone, location, quantity_l, duration_minutes, decision, weather
		FROM advisory_log ORDER BY recorded_at DESC, id DESC LIMIT ?
	`
)

// Append inserts e and evicts everything past the newest capacity entries in
// the same transaction. If ID or RecordedAt are empty, they're set.
func (r *AdviceLogSQL) Append(ctx context.Context, e models.AdvisoryLogEntry, capacity int) error {
	defer r.observe("advice_log_append", time.Now())

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	} else {
		e.RecordedAt = e.RecordedAt.UTC()
	}
	e.CropKey = strings.ToLower(strings.TrimSpace(e.CropKey))

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin advice log tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.NamedExecContext(ctx, insertAdviceSQL, e); err != nil {
		return fmt.Errorf("insert advice: %w", err)
	}
	if capacity > 0 {
		if _, err := tx.ExecContext(ctx, tx.Rebind(evictAdviceSQL), capacity); err != nil {
			return fmt.Errorf("evict advice: %w", err)
		}
	}
	return tx.Commit()
}

// List returns up to limit entries, most recent first.
func (r *AdviceLogSQL) List(ctx context.Context, limit int) ([]models.AdvisoryLogEntry, error) {
	defer r.observe("advice_log_list", time.Now())

	out := make([]models.AdvisoryLogEntry, 0, limit)
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(listAdviceSQL), limit); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].RecordedAt = out[i].RecordedAt.UTC()
	}
	return out, nil
}

func (r *AdviceLogSQL) observe(query string, start time.Time) {
	r.metrics.ObserveDBQuery(query, time.Since(start))
}
