package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agrimoga/internal/advisory"
	"agrimoga/internal/models"
	"agrimoga/internal/repository"
)

var harvestQualities = map[string]bool{"A": true, "B": true, "C": true}

// HarvestRequest is one picked lot. Date defaults to today and Quality to A.
type HarvestRequest struct {
	Date       string  `json:"date,omitempty" example:"2024-05-01"`
	Crop       string  `json:"crop" example:"strawberry"`
	Quality    string  `json:"quality,omitempty" example:"A"`
	QtyKg      float64 `json:"qty_kg" example:"50"`
	PricePerKg float64 `json:"price" example:"12"`
}

type HarvestLedger struct {
	Entries []models.HarvestEntry `json:"entries"`
	Totals  models.HarvestTotals  `json:"totals"`
}

type HarvestService struct {
	repo   repository.HarvestRepo
	logCap int
	now    func() time.Time
}

func NewHarvestService(repo repository.HarvestRepo, logCap int) *HarvestService {
	return &HarvestService{repo: repo, logCap: NormalizeLogCap(logCap), now: time.Now}
}

// AddHarvest clamps quantity and price at zero, prices the lot and appends it.
func (s *HarvestService) AddHarvest(ctx context.Context, req HarvestRequest) (models.HarvestEntry, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = s.now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return models.HarvestEntry{}, fmt.Errorf("%w: date %q, want YYYY-MM-DD", ErrInvalidInput, date)
	}
	quality := strings.ToUpper(strings.TrimSpace(req.Quality))
	if quality == "" {
		quality = "A"
	}
	if !harvestQualities[quality] {
		return models.HarvestEntry{}, fmt.Errorf("%w: quality %q, want A, B or C", ErrInvalidInput, req.Quality)
	}

	qty, price := max(0, req.QtyKg), max(0, req.PricePerKg)
	e := models.HarvestEntry{
		ID:         uuid.NewString(),
		PickedOn:   date,
		CropKey:    string(advisory.NormalizeCropKey(req.Crop)),
		Quality:    quality,
		QtyKg:      qty,
		PricePerKg: price,
		Total:      qty * price,
		RecordedAt: s.now().UTC(),
	}
	if err := s.repo.Append(ctx, e, s.logCap); err != nil {
		return models.HarvestEntry{}, fmt.Errorf("append harvest: %w", err)
	}
	return e, nil
}

// HarvestLedger lists the newest rows and the ledger totals.
func (s *HarvestService) HarvestLedger(ctx context.Context, limit int) (HarvestLedger, error) {
	entries, err := s.repo.List(ctx, normalizeLimit(limit, s.logCap))
	if err != nil {
		return HarvestLedger{}, err
	}
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return HarvestLedger{}, err
	}
	return HarvestLedger{Entries: entries, Totals: totals}, nil
}
