package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config selects the database. Path is used by sqlite, DSN by postgres.
type Config struct {
	Driver string
	Path   string
	DSN    string
}

// Open connects to the configured database and ensures tables exist.
func Open(cfg Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		return InitDB(cfg.Path)
	case DriverPostgres:
		return initPostgres(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	return finishInit(db, "sqlite")
}

func initPostgres(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("db.dsn is required for the postgres driver")
	}
	db, err := sqlx.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	return finishInit(db, "postgres")
}

func finishInit(db *sqlx.DB, name string) (*sqlx.DB, error) {
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", name, err)
	}
	return db, nil
}

// Column types are chosen so the same DDL runs on SQLite and PostgreSQL.
const schemaSnapshots = `
CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaAdvisoryLog = `
CREATE TABLE IF NOT EXISTS advisory_log (
    id TEXT PRIMARY KEY,
    recorded_at TIMESTAMP NOT NULL,
    crop TEXT NOT NULL,
    zone TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    quantity_l INTEGER NOT NULL,
    duration_minutes INTEGER,
    decision TEXT NOT NULL,
    weather TEXT
);
`

const indexAdvisoryLog = `
CREATE INDEX IF NOT EXISTS idx_advisory_log_recorded_at ON advisory_log (recorded_at);
`

const schemaHarvest = `
CREATE TABLE IF NOT EXISTS harvest (
    id TEXT PRIMARY KEY,
    picked_on TEXT NOT NULL,
    crop TEXT NOT NULL,
    quality TEXT NOT NULL,
    qty_kg DOUBLE PRECISION NOT NULL,
    price DOUBLE PRECISION NOT NULL,
    total DOUBLE PRECISION NOT NULL,
    recorded_at TIMESTAMP NOT NULL
);
`

const indexHarvest = `
CREATE INDEX IF NOT EXISTS idx_harvest_recorded_at ON harvest (recorded_at);
`

func ensureSchema(db *sqlx.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaSnapshots,
		schemaAdvisoryLog,
		indexAdvisoryLog,
		schemaHarvest,
		indexHarvest,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
