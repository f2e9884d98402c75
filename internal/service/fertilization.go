package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agrimoga/internal/advisory"
	"agrimoga/internal/catalog"
	"agrimoga/internal/metrics"
	"agrimoga/internal/store"
)

const (
	fertilizationFormKey = store.FormPrefix + "fertilization"
	defaultSplitDays     = 7
	dateLayout           = "2006-01-02"
)

// FertilizationRequest plans a season. Seasonal defaults to the crop's target
// and DoseCount to 4; an explicit DoseCount must be positive.
type FertilizationRequest struct {
	Crop      string        `json:"crop" example:"strawberry"`
	Seasonal  *advisory.NPK `json:"seasonal,omitempty"`
	DoseCount *int          `json:"dose_count,omitempty" example:"4"`
	SplitDays int           `json:"split_days,omitempty" example:"7"`
	Start     string        `json:"start,omitempty" example:"2024-03-01"`
	Note      string        `json:"note,omitempty"`
}

type FertilizationResult struct {
	Crop      advisory.CropKey           `json:"crop"`
	Plan      advisory.FertilizationPlan `json:"plan"`
	SplitDays int                        `json:"split_days"`
	Schedule  []advisory.ScheduledDose   `json:"schedule"`
	Note      string                     `json:"note,omitempty"`
}

type FertilizationService struct {
	catalog *catalog.Catalog
	store   *store.Store
	metrics *metrics.Collector
	now     func() time.Time
}

func NewFertilizationService(c *catalog.Catalog, st *store.Store, m *metrics.Collector) *FertilizationService {
	return &FertilizationService{catalog: c, store: st, metrics: m, now: time.Now}
}

func (s *FertilizationService) PlanFertilization(ctx context.Context, req FertilizationRequest) (FertilizationResult, error) {
	profile := s.catalog.Get(req.Crop)

	seasonal := profile.Fertilization
	if req.Seasonal != nil {
		seasonal = *req.Seasonal
	}
	doses := advisory.DefaultDoseCount
	if req.DoseCount != nil {
		doses = *req.DoseCount
	}
	plan, err := advisory.Plan(seasonal, doses)
	if err != nil {
		s.metrics.RecordAdvisory("fertilization", "invalid")
		return FertilizationResult{}, fmt.Errorf("plan %s: %w", profile.Key, err)
	}

	start := s.now().UTC().Truncate(24 * time.Hour)
	if v := strings.TrimSpace(req.Start); v != "" {
		start, err = time.Parse(dateLayout, v)
		if err != nil {
			return FertilizationResult{}, fmt.Errorf("%w: start date %q, want YYYY-MM-DD", ErrInvalidInput, v)
		}
	}
	split := req.SplitDays
	if split == 0 {
		split = defaultSplitDays
	}
	split = max(split, advisory.MinSplitDays)

	store.Save(ctx, s.store, fertilizationFormKey, req)
	s.metrics.RecordAdvisory("fertilization", "ok")
	return FertilizationResult{
		Crop:      profile.Key,
		Plan:      plan,
		SplitDays: split,
		Schedule:  plan.Schedule(start, split),
		Note:      req.Note,
	}, nil
}
