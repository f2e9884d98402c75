// Package store is the best-effort JSON snapshot layer over the snapshots
// table. Reads fall back, writes are logged and dropped on failure.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"agrimoga/internal/logger"
	"agrimoga/internal/metrics"
	"agrimoga/internal/repository"
)

// Well-known snapshot keys.
const (
	KeyLang       = "agrimoga:lang"
	KeyLastAdvice = "agrimoga:lastAdvice"
	KeyRisk       = "agrimoga:risk"
	KeyWeather    = "agrimoga:weather"
	FormPrefix    = "agrimoga:form:"
)

type Store struct {
	repo    repository.SnapshotRepo
	log     *logger.Logger
	metrics *metrics.Collector
}

func New(repo repository.SnapshotRepo, log *logger.Logger, m *metrics.Collector) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{repo: repo, log: log, metrics: m}
}

// LoadRaw returns the stored JSON for key, or fallback when the key is missing,
// unreadable or not valid JSON.
func (s *Store) LoadRaw(ctx context.Context, key string, fallback json.RawMessage) json.RawMessage {
	b, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warnw("snapshot_load_failed", "key", key, "error", err)
			s.metrics.RecordDBError("snapshot_get")
		}
		return fallback
	}
	if !json.Valid(b) {
		s.log.Warnw("snapshot_malformed", "key", key)
		return fallback
	}
	return b
}

// SaveRaw stores already-encoded JSON under key.
func (s *Store) SaveRaw(ctx context.Context, key string, value json.RawMessage) {
	if err := s.repo.Put(ctx, key, value); err != nil {
		s.log.Errorw("snapshot_save_failed", "key", key, "error", err)
		s.metrics.RecordDBError("snapshot_put")
	}
}

// Load decodes the snapshot under key, returning fallback when it is missing
// or malformed. It never errors.
func Load[T any](ctx context.Context, s *Store, key string, fallback T) T {
	b := s.LoadRaw(ctx, key, nil)
	if b == nil {
		return fallback
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		s.log.Warnw("snapshot_decode_failed", "key", key, "error", err)
		return fallback
	}
	return v
}

// Save encodes value and stores it under key. Failures are logged only.
func Save[T any](ctx context.Context, s *Store, key string, value T) {
	b, err := json.Marshal(value)
	if err != nil {
		s.log.Errorw("snapshot_encode_failed", "key", key, "error", err)
		return
	}
	s.SaveRaw(ctx, key, b)
}
