package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
)

// ErrNotFound is returned when a keyed row does not exist.
var ErrNotFound = errors.New("not found")

// SnapshotRepo is the key/value blob table behind form state and preferences.
type SnapshotRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// AdviceLogRepo is the capped advisory log.
type AdviceLogRepo interface {
	Append(ctx context.Context, e models.AdvisoryLogEntry, capacity int) error
	List(ctx context.Context, limit int) ([]models.AdvisoryLogEntry, error)
}

// HarvestRepo is the capped harvest ledger.
type HarvestRepo interface {
	Append(ctx context.Context, e models.HarvestEntry, capacity int) error
	List(ctx context.Context, limit int) ([]models.HarvestEntry, error)
	Totals(ctx context.Context) (models.HarvestTotals, error)
}

type Repository struct {
	Snapshots SnapshotRepo
	AdviceLog AdviceLogRepo
	Harvest   HarvestRepo
}

func NewRepository(db *sqlx.DB, m *metrics.Collector) *Repository {
	return &Repository{
		Snapshots: NewSnapshotSQL(db, m),
		AdviceLog: NewAdviceLogSQL(db, m),
		Harvest:   NewHarvestSQL(db, m),
	}
}
