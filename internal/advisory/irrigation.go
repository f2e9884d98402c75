package advisory

import (
	"math"

	"agrimoga/internal/i18n"
	"agrimoga/internal/models"
)

// Config holds the irrigation adjustment chain. Bands are evaluated high to
// low and each group contributes at most one factor.
type Config struct {
	HotTempC       float64 `mapstructure:"hot_temp_c"`
	HotMultiplier  float64 `mapstructure:"hot_multiplier"`
	WarmTempC      float64 `mapstructure:"warm_temp_c"`
	WarmMultiplier float64 `mapstructure:"warm_multiplier"`
	CoolTempC      float64 `mapstructure:"cool_temp_c"`
	CoolMultiplier float64 `mapstructure:"cool_multiplier"`

	WindyKmh       float64 `mapstructure:"windy_kmh"`
	WindMultiplier float64 `mapstructure:"wind_multiplier"`

	WetPct         float64 `mapstructure:"wet_pct"`
	WetMultiplier  float64 `mapstructure:"wet_multiplier"`
	DampPct        float64 `mapstructure:"damp_pct"`
	DampMultiplier float64 `mapstructure:"damp_multiplier"`

	// PostponeDryPct: a rainy tomorrow only postpones when today is drier than this.
	PostponeDryPct float64 `mapstructure:"postpone_dry_pct"`
	// LightFraction of the uncapped demand below which a capped dose is "light".
	LightFraction float64 `mapstructure:"light_fraction"`
	// HeavyThresholdL is the absolute daily volume at which a dose is "heavy".
	HeavyThresholdL float64 `mapstructure:"heavy_threshold_l"`
}

// DefaultConfig returns the canonical constants.
func DefaultConfig() Config {
	return Config{
		HotTempC:        35,
		HotMultiplier:   1.4,
		WarmTempC:       30,
		WarmMultiplier:  1.2,
		CoolTempC:       10,
		CoolMultiplier:  0.8,
		WindyKmh:        35,
		WindMultiplier:  1.15,
		WetPct:          60,
		WetMultiplier:   0.3,
		DampPct:         30,
		DampMultiplier:  0.6,
		PostponeDryPct:  20,
		LightFraction:   0.5,
		HeavyThresholdL: 1500,
	}
}

// Multiplier runs the adjustment chain (temperature, wind, rain/humidity) on
// an already clamped reading.
func (c Config) Multiplier(w models.WeatherReading) float64 {
	m := 1.0
	switch t := w.TemperatureC; {
	case t >= c.HotTempC:
		m *= c.HotMultiplier
	case t >= c.WarmTempC:
		m *= c.WarmMultiplier
	case t <= c.CoolTempC:
		m *= c.CoolMultiplier
	}
	if w.WindKmh >= c.WindyKmh {
		m *= c.WindMultiplier
	}
	switch r := w.RainOrHumidityPct; {
	case r >= c.WetPct:
		m *= c.WetMultiplier
	case r >= c.DampPct:
		m *= c.DampMultiplier
	}
	return m
}

// Mode selects how the base demand is scaled.
type Mode string

const (
	ModeArea  Mode = "area"
	ModePlant Mode = "plant"
)

// Plot is the irrigated geometry and its hydraulics. Area mode uses AreaM2,
// EmittersPerM2 and EmitterFlowLph. Plant mode uses Plants, DrippersPerPlant
// and EmitterFlowLph as the per-dripper flow. PumpFlowLph applies to both.
type Plot struct {
	Mode             Mode    `json:"mode"`
	AreaM2           float64 `json:"area_m2"`
	EmittersPerM2    float64 `json:"emitters_per_m2"`
	EmitterFlowLph   float64 `json:"emitter_flow_lph"`
	PumpFlowLph      float64 `json:"pump_flow_lph"`
	Plants           float64 `json:"plants"`
	DrippersPerPlant float64 `json:"drippers_per_plant"`
}

// WithZone fills plant-mode geometry from a preset. Fields already set on p win.
func (p Plot) WithZone(z Zone) Plot {
	p.Mode = ModePlant
	if p.Plants == 0 {
		p.Plants = float64(z.Plants)
	}
	if p.DrippersPerPlant == 0 {
		p.DrippersPerPlant = z.DrippersPerPlant
	}
	if p.EmitterFlowLph == 0 {
		p.EmitterFlowLph = z.DripperFlowLph
	}
	return p
}

// DecisionKind is the qualitative outcome of an irrigation advice.
type DecisionKind string

const (
	KindPostpone DecisionKind = "postpone"
	KindLight    DecisionKind = "light"
	KindNormal   DecisionKind = "normal"
	KindHeavy    DecisionKind = "heavy"
)

// Decision is the irrigation advice. Quantity is still reported on postpone;
// Actionable tells the caller whether to run it.
type Decision struct {
	Crop            CropKey      `json:"crop"`
	Mode            Mode         `json:"mode"`
	Quantity        int          `json:"quantity_l"`
	WantedLiters    int          `json:"wanted_l"`
	PerPlantLiters  *int         `json:"per_plant_l,omitempty"`
	CapacityLph     float64      `json:"capacity_lph"`
	DurationMinutes *int         `json:"duration_minutes"`
	Multiplier      float64      `json:"multiplier"`
	Kind            DecisionKind `json:"decision"`
	Actionable      bool         `json:"actionable"`
	Title           string       `json:"title"`
	Rationale       string       `json:"rationale"`
	Tip             string       `json:"tip"`
}

// Recommend computes the daily irrigation volume for the crop, reading and
// plot. Inputs are clamped, never rejected; zero geometry yields a light
// decision of 0 L.
func Recommend(p CropProfile, w models.WeatherReading, plot Plot, cfg Config, l i18n.Locale) Decision {
	w = ClampReading(w)
	mult := cfg.Multiplier(w)

	d := Decision{Crop: p.Key, Mode: plot.Mode, Multiplier: mult}
	if d.Mode != ModePlant {
		d.Mode = ModeArea
	}

	var raw, capacity, geometry float64
	switch d.Mode {
	case ModePlant:
		plants := math.Round(PlantsRange.Clamp(plot.Plants))
		perPlant := p.BaseDemandLPerPlant * mult
		pp := round(perPlant)
		d.PerPlantLiters = &pp
		raw = perPlant * plants
		capacity = plants * DrippersRange.Clamp(plot.DrippersPerPlant) * DripperFlowRange.Clamp(plot.EmitterFlowLph)
		geometry = plants
	default:
		area := AreaRange.Clamp(plot.AreaM2)
		raw = p.BaseDemandLPerM2 * mult * area
		capacity = area * EmitterDensityRange.Clamp(plot.EmittersPerM2) * EmitterFlowRange.Clamp(plot.EmitterFlowLph)
		geometry = area
	}

	wanted := round(nonNegative(raw))
	q := wanted
	if capacity > 0 {
		// one hour of delivery at full emitter output
		q = min(q, round(capacity))
	}
	d.WantedLiters = wanted
	d.Quantity = q
	d.CapacityLph = capacity

	// pump flow only times the run; the quantity cap is the emitter hour
	flow := PumpFlowRange.Clamp(plot.PumpFlowLph)
	if flow <= 0 {
		flow = capacity
	}
	if flow > 0 {
		m := round(float64(q) / flow * 60)
		d.DurationMinutes = &m
	}

	d.Kind, d.Rationale = classify(cfg, w, geometry, q, wanted, l)
	d.Actionable = d.Kind != KindPostpone
	d.Title = d.Kind.Title(l)
	d.Tip = p.Tip.Resolve(l)
	return d
}

func classify(cfg Config, w models.WeatherReading, geometry float64, q, wanted int, l i18n.Locale) (DecisionKind, string) {
	switch {
	case geometry <= 0:
		return KindLight, l.T(i18n.KeyReasonNoGeometry)
	case w.RainyTomorrow && w.RainOrHumidityPct < cfg.PostponeDryPct:
		return KindPostpone, l.T(i18n.KeyReasonPostpone)
	case float64(q) < cfg.LightFraction*float64(wanted):
		return KindLight, l.T(i18n.KeyReasonLight)
	case float64(q) >= cfg.HeavyThresholdL:
		return KindHeavy, l.T(i18n.KeyReasonHeavy)
	default:
		return KindNormal, l.T(i18n.KeyReasonNormal)
	}
}

// Title is the localized decision headline.
func (k DecisionKind) Title(l i18n.Locale) string {
	switch k {
	case KindPostpone:
		return l.T(i18n.KeyDecisionPostpone)
	case KindLight:
		return l.T(i18n.KeyDecisionLight)
	case KindHeavy:
		return l.T(i18n.KeyDecisionHeavy)
	default:
		return l.T(i18n.KeyDecisionNormal)
	}
}
