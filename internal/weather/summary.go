package weather

import (
	"math"
	"time"

	"agrimoga/internal/models"
)

const (
	// samplesPerDay at the provider's 3h resolution.
	samplesPerDay = 8
	// rainyTomorrowPopPct is the average precipitation probability that marks tomorrow as rainy.
	rainyTomorrowPopPct = 30
)

// Sample is one forecast step.
type Sample struct {
	At          time.Time `json:"at"`
	TempC       float64   `json:"temp_c"`
	WindKmh     float64   `json:"wind_kmh"`
	HumidityPct float64   `json:"humidity_pct"`
	PopPct      float64   `json:"pop_pct"`
}

// Period is the average of a run of samples.
type Period struct {
	TempC       float64 `json:"temp_c"`
	WindKmh     float64 `json:"wind_kmh"`
	HumidityPct float64 `json:"humidity_pct"`
	PopPct      float64 `json:"pop_pct"`
	Samples     int     `json:"samples"`
}

// Summary condenses a forecast into now, today and tomorrow.
type Summary struct {
	Place         string    `json:"place,omitempty"`
	FetchedAt     time.Time `json:"fetched_at"`
	Now           Period    `json:"now"`
	Today         Period    `json:"today"`
	Tomorrow      Period    `json:"tomorrow"`
	RainyTomorrow bool      `json:"rainy_tomorrow"`
}

// Summarize takes the first sample as now, samples [0,8) as today and [8,16)
// as tomorrow. Missing windows stay zero.
func Summarize(samples []Sample) Summary {
	var s Summary
	if len(samples) == 0 {
		return s
	}
	s.Now = average(samples[:1])
	s.Today = average(window(samples, 0))
	s.Tomorrow = average(window(samples, 1))
	s.RainyTomorrow = s.Tomorrow.Samples > 0 && s.Tomorrow.PopPct >= rainyTomorrowPopPct
	return s
}

func window(samples []Sample, day int) []Sample {
	from := day * samplesPerDay
	if from >= len(samples) {
		return nil
	}
	return samples[from:min(from+samplesPerDay, len(samples))]
}

func average(samples []Sample) Period {
	var p Period
	if len(samples) == 0 {
		return p
	}
	for _, s := range samples {
		p.TempC += s.TempC
		p.WindKmh += s.WindKmh
		p.HumidityPct += s.HumidityPct
		p.PopPct += s.PopPct
	}
	n := float64(len(samples))
	p.TempC /= n
	p.WindKmh /= n
	p.HumidityPct /= n
	p.PopPct /= n
	p.Samples = len(samples)
	return p
}

// Reading builds the advisor input: current temperature and wind, today's
// precipitation probability as the shared percentage, with humidity and
// rain probability kept apart for the disease rules.
func (s Summary) Reading() models.WeatherReading {
	humidity := math.Round(s.Now.HumidityPct)
	pop := math.Round(s.Today.PopPct)
	return models.WeatherReading{
		TemperatureC:      math.Round(s.Now.TempC),
		WindKmh:           math.Round(s.Now.WindKmh),
		RainOrHumidityPct: pop,
		RainyTomorrow:     s.RainyTomorrow,
		HumidityPct:       &humidity,
		RainProbPct:       &pop,
	}
}
