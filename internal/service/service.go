package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"agrimoga/internal/advisory"
	"agrimoga/internal/catalog"
	"agrimoga/internal/i18n"
	"agrimoga/internal/logger"
	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
	"agrimoga/internal/publisher"
	"agrimoga/internal/repository"
	"agrimoga/internal/store"
	"agrimoga/internal/weather"
)

// ErrInvalidInput marks caller mistakes the HTTP layer reports as 400.
var ErrInvalidInput = errors.New("invalid input")

// IsValidation reports whether err is a caller mistake rather than a fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, advisory.ErrInvalidDoseCount) ||
		errors.Is(err, i18n.ErrUnknownLocale)
}

// Irrigation runs the irrigation advisor and records decisions.
type Irrigation interface {
	Advise(ctx context.Context, req IrrigationRequest) (IrrigationAdvice, error)
	LastAdvice(ctx context.Context) (IrrigationAdvice, bool)
}

// Risk runs the disease risk advisor and keeps the latest snapshot.
type Risk interface {
	AssessRisk(ctx context.Context, req RiskRequest) (RiskResult, error)
	LatestRisk(ctx context.Context) models.RiskSnapshot
}

type Fertilization interface {
	PlanFertilization(ctx context.Context, req FertilizationRequest) (FertilizationResult, error)
}

type Pricing interface {
	BreakEven(ctx context.Context, req PricingRequest) (PricingResult, error)
}

// Harvest is the picked-lot ledger.
type Harvest interface {
	AddHarvest(ctx context.Context, req HarvestRequest) (models.HarvestEntry, error)
	HarvestLedger(ctx context.Context, limit int) (HarvestLedger, error)
}

// AdviceLog exposes the capped advisory history.
type AdviceLog interface {
	ListAdvice(ctx context.Context, limit int) ([]models.AdvisoryLogEntry, error)
	ExportLogs(ctx context.Context, w io.Writer) error
}

// Weather fetches and summarizes forecasts, falling back to the last-known reading.
type Weather interface {
	CurrentWeather(ctx context.Context, q WeatherQuery) (WeatherResult, error)
}

// Refresher keeps the farm's last-known weather current.
// Stop via context cancellation in main() for graceful shutdown.
type Refresher interface {
	Run(ctx context.Context, tick time.Duration)
}

// Forms keeps the per-screen form snapshots.
type Forms interface {
	GetForm(ctx context.Context, key string) json.RawMessage
	PutForm(ctx context.Context, key string, raw json.RawMessage) error
}

// Prefs holds the language preference.
type Prefs interface {
	Lang(ctx context.Context) i18n.Locale
	SetLang(ctx context.Context, raw string) (i18n.Locale, error)
}

type Crops interface {
	Crops(l i18n.Locale) []CropView
}

// WeatherClient is the provider boundary. *weather.Client satisfies it.
type WeatherClient interface {
	HasAPIKey() bool
	Forecast(ctx context.Context, lat, lon float64) ([]weather.Sample, string, error)
	Geocode(ctx context.Context, name string, l i18n.Locale) (weather.Place, error)
	ReverseGeocode(ctx context.Context, lat, lon float64, l i18n.Locale) string
}

// Farm is the default location refreshed in the background.
type Farm struct {
	Lat  float64 `mapstructure:"lat"`
	Lon  float64 `mapstructure:"lon"`
	Lang string  `mapstructure:"lang"`
}

// Config tunes the services.
type Config struct {
	LogCap     int
	Irrigation advisory.Config
	Farm       Farm
}

const (
	DefaultLogCap = 200
	MinLogCap     = 50
)

// NormalizeLogCap keeps the log cap within 50..200, defaulting to 200.
func NormalizeLogCap(n int) int {
	switch {
	case n <= 0:
		return DefaultLogCap
	case n < MinLogCap:
		return MinLogCap
	case n > DefaultLogCap:
		return DefaultLogCap
	default:
		return n
	}
}

// Deps are the collaborators NewService wires together.
type Deps struct {
	Repos     *repository.Repository
	Catalog   *catalog.Catalog
	Weather   WeatherClient
	Publisher publisher.Publisher
	Metrics   *metrics.Collector
	Log       *logger.Logger
	Config    Config
}

// Service aggregates all sub-services.
type Service struct {
	Irrigation
	Risk
	Fertilization
	Pricing
	Harvest
	AdviceLog
	Weather
	Refresher
	Forms
	Prefs
	Crops

	Hub *RiskHub
}

// NewService wires the repository layer, catalogue and boundaries into
// concrete services.
func NewService(d Deps) *Service {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Publisher == nil {
		d.Publisher = publisher.Nop{}
	}
	d.Config.LogCap = NormalizeLogCap(d.Config.LogCap)
	if d.Config.Irrigation == (advisory.Config{}) {
		d.Config.Irrigation = advisory.DefaultConfig()
	}

	st := store.New(d.Repos.Snapshots, d.Log, d.Metrics)
	prefs := NewPrefsService(st, i18n.OrDefault(d.Config.Farm.Lang))
	hub := NewRiskHub(d.Metrics)
	wx := NewWeatherService(d.Weather, st, prefs, d.Log, d.Metrics)

	return &Service{
		Irrigation:    NewIrrigationService(d.Catalog, d.Repos.AdviceLog, st, wx, prefs, d.Publisher, d.Config, d.Log, d.Metrics),
		Risk:          NewRiskService(d.Catalog, st, wx, prefs, hub, d.Log, d.Metrics),
		Fertilization: NewFertilizationService(d.Catalog, st, d.Metrics),
		Pricing:       NewPricingService(d.Catalog, st, prefs, d.Metrics),
		Harvest:       NewHarvestService(d.Repos.Harvest, d.Config.LogCap),
		AdviceLog:     NewAdviceLogService(d.Repos.AdviceLog, d.Repos.Harvest, d.Config.LogCap),
		Weather:       wx,
		Refresher:     NewRefresherService(wx, d.Config.Farm, d.Log),
		Forms:         NewFormsService(st),
		Prefs:         prefs,
		Crops:         NewCropsService(d.Catalog),
		Hub:           hub,
	}
}
