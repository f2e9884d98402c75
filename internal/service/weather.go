package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agrimoga/internal/i18n"
	"agrimoga/internal/logger"
	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
	"agrimoga/internal/store"
	"agrimoga/internal/weather"
)

// WeatherQuery locates a forecast by place name or by coordinates.
type WeatherQuery struct {
	Place string
	Lat   *float64
	Lon   *float64
	Lang  string
}

// WeatherSnapshot is the last successful fetch, kept as the fallback.
type WeatherSnapshot struct {
	Summary weather.Summary       `json:"summary"`
	Reading models.WeatherReading `json:"reading"`
	Place   string                `json:"place"`
	Lat     float64               `json:"lat"`
	Lon     float64               `json:"lon"`
}

// WeatherResult is a fresh summary, or the last-known one with a warning.
type WeatherResult struct {
	WeatherSnapshot
	Available bool   `json:"available"`
	Stale     bool   `json:"stale"`
	Warning   string `json:"warning,omitempty"`
}

type WeatherService struct {
	client  WeatherClient
	store   *store.Store
	prefs   *PrefsService
	log     *logger.Logger
	metrics *metrics.Collector
	now     func() time.Time
}

func NewWeatherService(client WeatherClient, st *store.Store, prefs *PrefsService, log *logger.Logger, m *metrics.Collector) *WeatherService {
	return &WeatherService{client: client, store: st, prefs: prefs, log: log, metrics: m, now: time.Now}
}

// CurrentWeather fetches and summarizes the forecast. Provider failures never
// surface as errors: the result carries a localized warning and the last-known
// reading instead. Only a query with neither place nor coordinates is rejected.
func (s *WeatherService) CurrentWeather(ctx context.Context, q WeatherQuery) (WeatherResult, error) {
	l := s.prefs.resolve(ctx, q.Lang)
	place := strings.TrimSpace(q.Place)
	if place == "" && (q.Lat == nil || q.Lon == nil) {
		return WeatherResult{}, fmt.Errorf("%w: place or lat/lon required", ErrInvalidInput)
	}

	var snap WeatherSnapshot
	if place != "" {
		start := time.Now()
		p, err := s.client.Geocode(ctx, place, l)
		s.recordFetch("geocode", err, start)
		if err != nil {
			return s.fallback(ctx, err, l), nil
		}
		snap.Lat, snap.Lon, snap.Place = p.Lat, p.Lon, p.Name
	} else {
		snap.Lat, snap.Lon = *q.Lat, *q.Lon
	}

	start := time.Now()
	samples, city, err := s.client.Forecast(ctx, snap.Lat, snap.Lon)
	s.recordFetch("forecast", err, start)
	if err != nil {
		return s.fallback(ctx, err, l), nil
	}

	if snap.Place == "" {
		snap.Place = s.client.ReverseGeocode(ctx, snap.Lat, snap.Lon, l)
	}
	if snap.Place == "" {
		snap.Place = city
	}
	snap.Summary = weather.Summarize(samples)
	snap.Summary.Place = snap.Place
	snap.Summary.FetchedAt = s.now().UTC()
	snap.Reading = snap.Summary.Reading()

	store.Save(ctx, s.store, store.KeyWeather, snap)
	return WeatherResult{WeatherSnapshot: snap, Available: true}, nil
}

func (s *WeatherService) fallback(ctx context.Context, err error, l i18n.Locale) WeatherResult {
	s.log.Warnw("weather_fetch_failed", "kind", weather.KindOf(err), "err", err)
	res := WeatherResult{Stale: true, Warning: weather.Warning(err, l)}
	if snap, ok := s.lastKnown(ctx); ok {
		res.WeatherSnapshot = snap
		res.Available = true
	}
	return res
}

func (s *WeatherService) lastKnown(ctx context.Context) (WeatherSnapshot, bool) {
	snap := store.Load(ctx, s.store, store.KeyWeather, WeatherSnapshot{})
	return snap, !snap.Summary.FetchedAt.IsZero()
}

// LastReading is the advisor input from the last successful fetch.
func (s *WeatherService) LastReading(ctx context.Context) (models.WeatherReading, string, bool) {
	snap, ok := s.lastKnown(ctx)
	return snap.Reading, snap.Place, ok
}

func (s *WeatherService) recordFetch(op string, err error, start time.Time) {
	result := "ok"
	if err != nil {
		result = string(weather.KindOf(err))
		if result == "" {
			result = "not_found"
		}
	}
	s.metrics.RecordWeatherFetch(op, result, time.Since(start))
}
