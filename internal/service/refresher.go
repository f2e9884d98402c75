package service

import (
	"context"
	"time"

	"agrimoga/internal/logger"
)

// DefaultRefreshInterval is used when Run is given a non-positive tick.
const DefaultRefreshInterval = 30 * time.Minute

// RefresherService periodically fetches the farm's forecast so the advisors
// always have a recent last-known reading.
type RefresherService struct {
	weather *WeatherService
	farm    Farm
	log     *logger.Logger
}

func NewRefresherService(wx *WeatherService, farm Farm, log *logger.Logger) *RefresherService {
	return &RefresherService{weather: wx, farm: farm, log: log}
}

// Run refreshes once immediately, then every tick until ctx is canceled.
// It is a no-op when no farm location is configured.
func (s *RefresherService) Run(ctx context.Context, tick time.Duration) {
	if s.farm.Lat == 0 && s.farm.Lon == 0 {
		s.log.Infow("weather_refresh_disabled", "reason", "no farm location")
		return
	}
	if tick <= 0 {
		tick = DefaultRefreshInterval
	}
	s.refresh(ctx)

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.refresh(ctx)
		}
	}
}

func (s *RefresherService) refresh(ctx context.Context) {
	lat, lon := s.farm.Lat, s.farm.Lon
	res, err := s.weather.CurrentWeather(ctx, WeatherQuery{Lat: &lat, Lon: &lon, Lang: s.farm.Lang})
	if err != nil {
		s.log.Errorw("weather_refresh_failed", "err", err)
		return
	}
	if res.Stale {
		s.log.Warnw("weather_refresh_stale", "warning", res.Warning)
		return
	}
	s.log.Debugw("weather_refreshed", "place", res.Place, "temp_c", res.Reading.TemperatureC)
}
