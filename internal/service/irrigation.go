package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agrimoga/internal/advisory"
	"agrimoga/internal/catalog"
	"agrimoga/internal/logger"
	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
	"agrimoga/internal/publisher"
	"agrimoga/internal/repository"
	"agrimoga/internal/share"
	"agrimoga/internal/store"
)

const irrigationFormKey = store.FormPrefix + "irrigation"

// readingSource supplies the last-known weather when a request carries none.
type readingSource interface {
	LastReading(ctx context.Context) (models.WeatherReading, string, bool)
}

// IrrigationRequest is one run of the irrigation advisor. A nil Weather uses
// the last-known forecast. Record appends the decision to the advisory log.
type IrrigationRequest struct {
	Crop     string                 `json:"crop" example:"strawberry"`
	Lang     string                 `json:"lang,omitempty" example:"fr"`
	Zone     string                 `json:"zone,omitempty"`
	Plot     advisory.Plot          `json:"plot"`
	Weather  *models.WeatherReading `json:"weather,omitempty"`
	Location string                 `json:"location,omitempty"`
	Record   bool                   `json:"record,omitempty"`
}

// IrrigationAdvice is the decision plus everything needed to display or share it.
type IrrigationAdvice struct {
	Decision  advisory.Decision        `json:"decision"`
	Weather   models.WeatherReading    `json:"weather"`
	Location  string                   `json:"location,omitempty"`
	ShareText string                   `json:"share_text"`
	ShareLink string                   `json:"share_link"`
	Recorded  *models.AdvisoryLogEntry `json:"recorded,omitempty"`
	AdvisedAt time.Time                `json:"advised_at"`
}

type IrrigationService struct {
	catalog   *catalog.Catalog
	logRepo   repository.AdviceLogRepo
	store     *store.Store
	readings  readingSource
	prefs     *PrefsService
	publisher publisher.Publisher
	cfg       advisory.Config
	logCap    int
	log       *logger.Logger
	metrics   *metrics.Collector
	now       func() time.Time
}

func NewIrrigationService(
	c *catalog.Catalog,
	logRepo repository.AdviceLogRepo,
	st *store.Store,
	readings readingSource,
	prefs *PrefsService,
	pub publisher.Publisher,
	cfg Config,
	log *logger.Logger,
	m *metrics.Collector,
) *IrrigationService {
	return &IrrigationService{
		catalog:   c,
		logRepo:   logRepo,
		store:     st,
		readings:  readings,
		prefs:     prefs,
		publisher: pub,
		cfg:       cfg.Irrigation,
		logCap:    NormalizeLogCap(cfg.LogCap),
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
}

// Advise computes the decision, remembers the form and the last advice, and
// optionally records the decision and forwards it to the field controllers.
func (s *IrrigationService) Advise(ctx context.Context, req IrrigationRequest) (IrrigationAdvice, error) {
	l := s.prefs.resolve(ctx, req.Lang)
	profile := s.catalog.Get(req.Crop)

	plot := req.Plot
	if name := strings.TrimSpace(req.Zone); name != "" {
		z, ok := profile.Zone(name)
		if !ok {
			return IrrigationAdvice{}, fmt.Errorf("%w: unknown zone %q for %s", ErrInvalidInput, name, profile.Key)
		}
		plot = plot.WithZone(z)
	}

	location := strings.TrimSpace(req.Location)
	var reading models.WeatherReading
	if req.Weather != nil {
		reading = *req.Weather
	} else {
		r, place, ok := s.readings.LastReading(ctx)
		if !ok {
			return IrrigationAdvice{}, fmt.Errorf("%w: weather reading required, no forecast fetched yet", ErrInvalidInput)
		}
		reading = r
		if location == "" {
			location = place
		}
	}
	reading = advisory.ClampReading(reading)

	d := advisory.Recommend(profile, reading, plot, s.cfg, l)
	text := share.IrrigationText(share.Irrigation{
		CropLabel: profile.Label.Resolve(l),
		Zone:      req.Zone,
		Place:     location,
		Reading:   reading,
		Decision:  d,
	}, l)
	advice := IrrigationAdvice{
		Decision:  d,
		Weather:   reading,
		Location:  location,
		ShareText: text,
		ShareLink: share.Link(text),
		AdvisedAt: s.now().UTC(),
	}

	s.metrics.RecordAdvisory("irrigation", string(d.Kind))
	s.metrics.RecordIrrigation(string(d.Kind), d.Quantity)

	store.Save(ctx, s.store, irrigationFormKey, req)
	store.Save(ctx, s.store, store.KeyLastAdvice, advice)

	if req.Record {
		advice.Recorded = s.record(ctx, advice, req.Zone)
	}
	return advice, nil
}

// record appends to the advisory log and publishes. The request waits for the
// publish ack, bounded by the publisher. Failures are logged only.
func (s *IrrigationService) record(ctx context.Context, a IrrigationAdvice, zone string) *models.AdvisoryLogEntry {
	entry := models.AdvisoryLogEntry{
		ID:              uuid.NewString(),
		RecordedAt:      a.AdvisedAt,
		CropKey:         string(a.Decision.Crop),
		Zone:            zone,
		LocationLabel:   a.Location,
		Quantity:        a.Decision.Quantity,
		DurationMinutes: a.Decision.DurationMinutes,
		Decision:        string(a.Decision.Kind),
		Weather:         a.Weather,
	}
	if err := s.logRepo.Append(ctx, entry, s.logCap); err != nil {
		s.log.Errorw("advice_log_append_failed", "err", err, "crop", entry.CropKey)
		s.metrics.RecordDBError("advice_log_append")
		return nil
	}
	if err := s.publisher.PublishDecision(ctx, entry); err != nil {
		s.log.Warnw("advice_publish_failed", "err", err, "entry_id", entry.ID)
	}
	return &entry
}

// LastAdvice returns the most recent advice, if any was given.
func (s *IrrigationService) LastAdvice(ctx context.Context) (IrrigationAdvice, bool) {
	a := store.Load(ctx, s.store, store.KeyLastAdvice, IrrigationAdvice{})
	return a, !a.AdvisedAt.IsZero()
}
