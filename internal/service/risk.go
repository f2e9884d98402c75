package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agrimoga/internal/advisory"
	"agrimoga/internal/catalog"
	"agrimoga/internal/logger"
	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
	"agrimoga/internal/store"
)

// RiskRequest assesses one crop. A nil Weather uses the last-known forecast.
type RiskRequest struct {
	Crop    string                 `json:"crop" example:"strawberry"`
	Lang    string                 `json:"lang,omitempty"`
	Weather *models.WeatherReading `json:"weather,omitempty"`
}

// DiseaseView is a catalogue disease resolved for one locale, with its score
// when it was part of an assessment.
type DiseaseView struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Causes  []string      `json:"causes,omitempty"`
	Actions []string      `json:"actions,omitempty"`
	Score   *int          `json:"score,omitempty"`
	Tier    advisory.Tier `json:"tier,omitempty"`
	Label   string        `json:"label,omitempty"`
}

type HintView struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

// RiskResult is the crop-level tier and every disease card.
type RiskResult struct {
	Crop       advisory.CropKey      `json:"crop"`
	Tier       advisory.Tier         `json:"tier"`
	Label      string                `json:"label"`
	Badge      bool                  `json:"badge"`
	Assessment advisory.Assessment   `json:"assessment"`
	Diseases   []DiseaseView         `json:"diseases"`
	Hints      []HintView            `json:"hints,omitempty"`
	Weather    models.WeatherReading `json:"weather"`
	Snapshot   models.RiskSnapshot   `json:"snapshot"`
}

type RiskService struct {
	catalog  *catalog.Catalog
	store    *store.Store
	readings readingSource
	prefs    *PrefsService
	hub      *RiskHub
	log      *logger.Logger
	metrics  *metrics.Collector
	now      func() time.Time

	mu        sync.Mutex
	lastTiers map[advisory.CropKey]advisory.Tier
}

func NewRiskService(c *catalog.Catalog, st *store.Store, readings readingSource, prefs *PrefsService, hub *RiskHub, log *logger.Logger, m *metrics.Collector) *RiskService {
	return &RiskService{
		catalog:   c,
		store:     st,
		readings:  readings,
		prefs:     prefs,
		hub:       hub,
		log:       log,
		metrics:   m,
		now:       time.Now,
		lastTiers: make(map[advisory.CropKey]advisory.Tier),
	}
}

// AssessRisk scores the crop's diseases, saves the risk snapshot and notifies
// subscribers when the crop's tier changed.
func (s *RiskService) AssessRisk(ctx context.Context, req RiskRequest) (RiskResult, error) {
	l := s.prefs.resolve(ctx, req.Lang)
	profile := s.catalog.Get(req.Crop)

	var reading models.WeatherReading
	if req.Weather != nil {
		reading = *req.Weather
	} else {
		r, _, ok := s.readings.LastReading(ctx)
		if !ok {
			return RiskResult{}, fmt.Errorf("%w: weather reading required, no forecast fetched yet", ErrInvalidInput)
		}
		reading = r
	}
	reading = advisory.ClampReading(reading)

	a := advisory.Assess(profile.Diseases, reading)
	res := RiskResult{
		Crop:       profile.Key,
		Tier:       a.Tier,
		Label:      a.Tier.Label(l),
		Badge:      a.Tier.Rank() >= 1,
		Assessment: a,
		Diseases:   make([]DiseaseView, 0, len(profile.Diseases)),
		Weather:    reading,
	}
	for _, d := range profile.Diseases {
		// cards show every disease, the crop tier stops at the first high
		score := advisory.Evaluate(d.Rules, reading)
		tier := advisory.TierFor(score)
		v := diseaseView(d, l)
		v.Score, v.Tier, v.Label = &score, tier, tier.Label(l)
		res.Diseases = append(res.Diseases, v)
	}
	for _, h := range profile.Hints {
		res.Hints = append(res.Hints, HintView{Title: h.Title.Resolve(l), Hint: h.Hint.Resolve(l)})
	}

	res.Snapshot = models.RiskSnapshot{
		Score: a.Tier.Rank(),
		Level: string(a.Tier),
		Crop:  string(profile.Key),
		At:    s.now().UTC(),
	}
	store.Save(ctx, s.store, store.KeyRisk, res.Snapshot)
	s.metrics.RecordAdvisory("disease", string(a.Tier))

	if s.tierChanged(profile.Key, a.Tier) {
		s.log.Infow("risk_tier_changed", "crop", profile.Key, "tier", a.Tier)
		s.hub.Publish(res.Snapshot)
	}
	return res, nil
}

func (s *RiskService) tierChanged(crop advisory.CropKey, tier advisory.Tier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, seen := s.lastTiers[crop]
	s.lastTiers[crop] = tier
	return !seen || prev != tier
}

// LatestRisk returns the saved snapshot, or a low snapshot when none exists.
func (s *RiskService) LatestRisk(ctx context.Context) models.RiskSnapshot {
	return store.Load(ctx, s.store, store.KeyRisk, models.RiskSnapshot{Level: string(advisory.TierLow)})
}
