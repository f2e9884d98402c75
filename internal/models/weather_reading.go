package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// WeatherReading is the environmental input to every advisor.
//
// RainOrHumidityPct is the single percentage the irrigation chain uses. The
// disease rules can take separate humidity and rain-probability figures; when
// either is absent RainOrHumidityPct stands in for it.
type WeatherReading struct {
	TemperatureC      float64  `json:"temperature_c"`        // °C, clamped to -5..50
	WindKmh           float64  `json:"wind_kmh"`             // km/h, clamped to 0..90
	RainOrHumidityPct float64  `json:"rain_or_humidity_pct"` // %, clamped to 0..100
	RainyTomorrow     bool     `json:"rainy_tomorrow"`
	SoilIsWet         bool     `json:"soil_is_wet,omitempty"`
	HumidityPct       *float64 `json:"humidity_pct,omitempty"`
	RainProbPct       *float64 `json:"rain_prob_pct,omitempty"`
}

// Humidity is the relative humidity the disease rules compare against.
func (w WeatherReading) Humidity() float64 {
	if w.HumidityPct != nil {
		return *w.HumidityPct
	}
	return w.RainOrHumidityPct
}

// RainProb is the precipitation probability the disease rules compare against.
func (w WeatherReading) RainProb() float64 {
	if w.RainProbPct != nil {
		return *w.RainProbPct
	}
	return w.RainOrHumidityPct
}

// Value stores the reading as a JSON column.
func (w WeatherReading) Value() (driver.Value, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads the JSON column written by Value. NULL leaves the zero reading.
func (w *WeatherReading) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*w = WeatherReading{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), w)
	case []byte:
		return json.Unmarshal(v, w)
	default:
		return errors.New("weather reading: unsupported column type")
	}
}
