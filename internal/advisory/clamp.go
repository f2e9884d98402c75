package advisory

import (
	"math"

	"agrimoga/internal/models"
)

// Range is an inclusive [Min, Max] bound.
type Range struct {
	Min, Max float64
}

// Physically plausible input ranges.
var (
	TemperatureRange    = Range{-5, 50}
	WindRange           = Range{0, 90}
	PercentRange        = Range{0, 100}
	DripperFlowRange    = Range{0.5, 16}
	DrippersRange       = Range{1, 16}
	PumpFlowRange       = Range{0, 50000}
	AreaRange           = Range{0, 1_000_000} // 100 ha
	PlantsRange         = Range{0, 1_000_000}
	EmitterDensityRange = Range{0, 100} // emitters per m²
	EmitterFlowRange    = Range{0, 16}
)

// maxRounded keeps round inside the exactly representable integers.
const maxRounded = 1 << 53

// Clamp bounds v to r. NaN maps to r.Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Min(r.Max, math.Max(r.Min, v))
}

// nonNegative clamps v to [0, +Inf); NaN maps to 0.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// ClampReading returns the reading with every field inside its range.
func ClampReading(w models.WeatherReading) models.WeatherReading {
	w.TemperatureC = TemperatureRange.Clamp(w.TemperatureC)
	w.WindKmh = WindRange.Clamp(w.WindKmh)
	w.RainOrHumidityPct = PercentRange.Clamp(w.RainOrHumidityPct)
	if w.HumidityPct != nil {
		v := PercentRange.Clamp(*w.HumidityPct)
		w.HumidityPct = &v
	}
	if w.RainProbPct != nil {
		v := PercentRange.Clamp(*w.RainProbPct)
		w.RainProbPct = &v
	}
	return w
}

// round half away from zero, matching what the UI displays. Results saturate
// at ±2^53 so the int conversion cannot overflow.
func round(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(-maxRounded, math.Min(maxRounded, v))))
}
