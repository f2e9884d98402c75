package service

import (
	"context"
	"io"

	"agrimoga/internal/export"
	"agrimoga/internal/models"
	"agrimoga/internal/repository"
)

type AdviceLogService struct {
	logRepo     repository.AdviceLogRepo
	harvestRepo repository.HarvestRepo
	logCap      int
}

func NewAdviceLogService(logRepo repository.AdviceLogRepo, harvestRepo repository.HarvestRepo, logCap int) *AdviceLogService {
	return &AdviceLogService{logRepo: logRepo, harvestRepo: harvestRepo, logCap: NormalizeLogCap(logCap)}
}

// normalizeLimit maps a missing or out-of-range limit onto 1..capacity.
func normalizeLimit(limit, capacity int) int {
	if limit <= 0 || limit > capacity {
		return capacity
	}
	return limit
}

// ListAdvice returns up to limit entries, most recent first.
func (s *AdviceLogService) ListAdvice(ctx context.Context, limit int) ([]models.AdvisoryLogEntry, error) {
	return s.logRepo.List(ctx, normalizeLimit(limit, s.logCap))
}

// ExportLogs writes the whole advisory log and harvest ledger as XLSX.
func (s *AdviceLogService) ExportLogs(ctx context.Context, w io.Writer) error {
	advice, err := s.logRepo.List(ctx, s.logCap)
	if err != nil {
		return err
	}
	harvest, err := s.harvestRepo.List(ctx, s.logCap)
	if err != nil {
		return err
	}
	totals, err := s.harvestRepo.Totals(ctx)
	if err != nil {
		return err
	}
	return export.Write(w, advice, harvest, totals)
}
